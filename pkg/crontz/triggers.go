package crontz

import (
	"time"

	"github.com/google/uuid"
)

// SchedulePair names one schedule to include in a triggers artifact. The
// first element may be a registered schedule name or a raw cron literal.
type SchedulePair struct {
	NameOrLiteral string
	OffsetHours   float64
}

// Artifact is the deployment-trigger structure produced from a set of
// schedules: the UTC cron literals a platform consumes, plus a record of
// how each one was derived.
type Artifact struct {
	Triggers       TriggerSpec    `json:"triggers" yaml:"triggers"`
	ConversionInfo ConversionInfo `json:"conversion_info" yaml:"conversion_info"`
}

// TriggerSpec carries the UTC cron literals in input order.
type TriggerSpec struct {
	Crons []string `json:"crons" yaml:"crons"`
}

// ConversionInfo documents the conversion run that produced the triggers.
type ConversionInfo struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Entries     []ConversionEntry `json:"entries" yaml:"entries"`
}

// ConversionEntry records one schedule's conversion.
type ConversionEntry struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Original    string   `json:"original" yaml:"original"`
	Converted   string   `json:"converted" yaml:"converted"`
	OffsetHours float64  `json:"offset_hours" yaml:"offset_hours"`
	Notes       []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// BuildTriggers converts each schedule pair to UTC and assembles the
// triggers artifact. The artifact is pure data; writing it anywhere is the
// caller's concern.
func BuildTriggers(pairs []SchedulePair) (*Artifact, error) {
	artifact := &Artifact{
		ConversionInfo: ConversionInfo{
			RunID:       uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
	}

	for _, pair := range pairs {
		literal := pair.NameOrLiteral
		name := ""
		if registered, ok := Schedule(pair.NameOrLiteral); ok {
			literal = registered
			name = pair.NameOrLiteral
		}

		result, err := Convert(literal, pair.OffsetHours)
		if err != nil {
			return nil, err
		}

		converted := result.Converted.String()
		artifact.Triggers.Crons = append(artifact.Triggers.Crons, converted)
		artifact.ConversionInfo.Entries = append(artifact.ConversionInfo.Entries, ConversionEntry{
			Name:        name,
			Original:    literal,
			Converted:   converted,
			OffsetHours: pair.OffsetHours,
			Notes:       result.Notes,
		})
	}

	return artifact, nil
}
