// Package workflow models workflow-orchestration configuration documents
// and validates them against the integration schema.
package workflow

import (
	"fmt"

	"github.com/jwtan/cronflow/pkg/templating"
)

// Config is the typed view of a workflow configuration document. Instances
// are built once from decoded input and treated as read-only afterwards.
type Config struct {
	Name        string            `yaml:"name"`
	APIBase     string            `yaml:"api_base"`
	Description string            `yaml:"description,omitempty"`
	Schedule    string            `yaml:"schedule,omitempty"`
	Timezone    string            `yaml:"timezone,omitempty"`
	Auth        *Auth             `yaml:"auth,omitempty"`
	Variables   map[string]string `yaml:"variables,omitempty"`
	Steps       []Step            `yaml:"steps"`
	Monitoring  *Monitoring       `yaml:"monitoring,omitempty"`
}

// Step is one unit of work in a workflow.
type Step struct {
	Name          string   `yaml:"name"`
	Endpoint      string   `yaml:"endpoint"`
	Method        string   `yaml:"method,omitempty"`
	ParallelGroup string   `yaml:"parallel_group,omitempty"`
	DependsOn     []string `yaml:"depends_on,omitempty"`
	Retry         *Retry   `yaml:"retry,omitempty"`
	Payload       string   `yaml:"payload,omitempty"`
	OutputKey     string   `yaml:"output_key,omitempty"`
}

// Auth describes how workflow API calls authenticate. Type selects which
// companion fields apply.
type Auth struct {
	Type          string            `yaml:"type"`
	Token         string            `yaml:"token,omitempty"`
	APIKey        string            `yaml:"api_key,omitempty"`
	Username      string            `yaml:"username,omitempty"`
	Password      string            `yaml:"password,omitempty"`
	CustomHeaders map[string]string `yaml:"custom_headers,omitempty"`
}

// Retry configures per-step retry behavior.
type Retry struct {
	Limit   int    `yaml:"limit"`
	Delay   string `yaml:"delay"`
	Backoff string `yaml:"backoff,omitempty"`
	Timeout string `yaml:"timeout,omitempty"`
}

// Monitoring configures failure/success alerting for a workflow.
type Monitoring struct {
	WebhookURL     string `yaml:"webhook_url,omitempty"`
	AlertOnFailure bool   `yaml:"alert_on_failure,omitempty"`
	AlertOnSuccess bool   `yaml:"alert_on_success,omitempty"`
}

// StepByName returns the named step, if present.
func (c *Config) StepByName(name string) (Step, bool) {
	for _, step := range c.Steps {
		if step.Name == name {
			return step, true
		}
	}

	return Step{}, false
}

// RenderPayload renders a step's payload template against the config's
// variable dictionary. Steps without a payload render to the empty string.
func (c *Config) RenderPayload(step Step) (string, error) {
	if step.Payload == "" {
		return "", nil
	}

	rendered, err := templating.Render(step.Payload, c.Variables)
	if err != nil {
		return "", fmt.Errorf("step %q payload: %w", step.Name, err)
	}

	return rendered, nil
}
