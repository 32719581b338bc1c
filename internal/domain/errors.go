package domain

import "errors"

// Filesystem errors
var (
	// ErrNotFound indicates the requested path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrNotDirectory indicates expected a directory but got a file
	ErrNotDirectory = errors.New("not a directory")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = errors.New("permission denied")
)

// Config errors
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

// Docker errors
var (
	// ErrDockerUnavailable indicates the docker binary could not be run
	ErrDockerUnavailable = errors.New("docker unavailable")

	// ErrDockerCommand indicates the docker command exited non-zero
	ErrDockerCommand = errors.New("docker command failed")
)
