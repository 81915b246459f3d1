package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lox/config"
)

func TestRunSource_CleanProgramExitsZero(t *testing.T) {
	cfg := config.Default()
	err := runSource(cfg, `print "hello";`)
	assert.NoError(t, err)
}

func TestRunSource_StaticErrorExits65(t *testing.T) {
	cfg := config.Default()
	err := runSource(cfg, `print ;`)
	var ee *exitError
	assert.ErrorAs(t, err, &ee)
	assert.Equal(t, exitDataErr, ee.code)
}

func TestRunSource_RuntimeErrorExits70(t *testing.T) {
	cfg := config.Default()
	err := runSource(cfg, `print 1 / 0;`)
	var ee *exitError
	assert.ErrorAs(t, err, &ee)
	assert.Equal(t, exitSoftware, ee.code)
}

func TestRunFile_MissingFileExits64(t *testing.T) {
	cfg := config.Default()
	err := runFile(cfg, "/no/such/file.lox")
	var ee *exitError
	assert.ErrorAs(t, err, &ee)
	assert.Equal(t, exitUsage, ee.code)
}
