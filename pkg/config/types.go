// Package config provides configuration loading and validation for logexcerpt.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Inputs lists log files or glob patterns (** supported) to scan.
	Inputs []string `yaml:"inputs"`

	// DatePrefix is the expected daily date prefix. Lines starting with
	// it are "expected"; all other lines are anomalous.
	DatePrefix string `yaml:"date_prefix"`

	// Context bounds how many expected lines are kept around each
	// anomalous run.
	Context ContextConfig `yaml:"context"`

	// Divider inserts SEGMENT START/END marker lines between segments
	// in text output.
	Divider bool `yaml:"divider"`

	// Output is an optional file path for the rendered output.
	// Empty means stdout.
	Output string `yaml:"output,omitempty"`

	// Webhooks optionally receive the extraction report as JSON.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// ContextConfig bounds the context window collected around each span.
type ContextConfig struct {
	// Before is the maximum number of expected lines kept before a span.
	Before int `yaml:"before"`

	// After is the maximum number of expected lines kept after a span.
	After int `yaml:"after"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnSegments fires only when segments were extracted (default).
	WebhookTriggerOnSegments WebhookTrigger = "on_segments"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending extraction reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_segments" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
