// Package utils holds the configuration and logging plumbing shared by find-commit.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper. LoggerFactory builds zap loggers in
// structured or console form.
package utils
