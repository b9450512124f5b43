// Package setup holds the import-step registry: named units of configuration
// replay that can be re-run against any site.
package setup

import (
	"fmt"
	"sort"

	"github.com/radoslawroszkowiak/siteup/internal/models"
	"gorm.io/gorm"
)

// Context is what an import step runs against
type Context struct {
	DB   *gorm.DB
	Site *models.Site
}

// Step is a named unit of configuration replay
type Step struct {
	ID          string
	Description string
	Run         func(*Context) error
}

var registry = map[string]Step{}

// Register adds a step to the registry. Registering the same id twice is a
// programming error.
func Register(step Step) {
	if _, exists := registry[step.ID]; exists {
		panic(fmt.Sprintf("import step %q registered twice", step.ID))
	}
	registry[step.ID] = step
}

// GetStep returns a registered step by id
func GetStep(id string) (Step, error) {
	step, ok := registry[id]
	if !ok {
		return Step{}, fmt.Errorf("unknown import step: %s", id)
	}
	return step, nil
}

// SortedSteps returns every registered step ordered by id
func SortedSteps() []Step {
	steps := make([]Step, 0, len(registry))
	for _, step := range registry {
		steps = append(steps, step)
	}
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].ID < steps[j].ID
	})
	return steps
}

// RunSteps runs the named steps, in the order given, against one site. Every
// id must name a registered step; the check happens before any step runs.
func RunSteps(ctx *Context, ids []string) error {
	steps := make([]Step, 0, len(ids))
	for _, id := range ids {
		step, err := GetStep(id)
		if err != nil {
			return err
		}
		steps = append(steps, step)
	}

	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("import step %s failed: %w", step.ID, err)
		}
	}

	return nil
}
