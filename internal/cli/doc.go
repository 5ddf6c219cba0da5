// Package cli provides command-line interface setup and configuration
// for the espada application. It handles flag parsing, command
// creation, logging and configuration management using cobra and viper.
package cli
