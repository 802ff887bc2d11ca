// Package config reads webblock settings from the environment.
package config
