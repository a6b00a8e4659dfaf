// Package webhookrepo provides top-level metadata for the GitHub webhook events API.
//
// @title GitHub Webhook Events API
// @version 1.0.0
// @description Receives GitHub push and pull request webhooks, normalizes them into event records and lists the latest activity.
// @BasePath /
package webhookrepo
