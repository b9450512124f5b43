package updater

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Operation names, one per host maintenance routine
const (
	OpReinstallProducts = "reinstall-products"
	OpRebuildCatalog    = "rebuild-catalog"
	OpRefreshJavascript = "refresh-javascript"
	OpRefreshCSS        = "refresh-css"
	OpUpdateWorkflow    = "update-workflow"
)

// toolOperations maps each CLI tool name to the operations it selects
var toolOperations = map[string][]string{
	"reinstall":  {OpReinstallProducts},
	"catalog":    {OpRebuildCatalog},
	"javascript": {OpRefreshJavascript},
	"css":        {OpRefreshCSS},
	"workflow":   {OpUpdateWorkflow},
	"all": {
		OpReinstallProducts,
		OpRebuildCatalog,
		OpRefreshJavascript,
		OpRefreshCSS,
		OpUpdateWorkflow,
	},
}

// ToolNames returns the accepted tool names, sorted
func ToolNames() []string {
	names := make([]string, 0, len(toolOperations))
	for name := range toolOperations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plan is the resolved set of work one update invocation performs per site
type Plan struct {
	Operations    []string // unique, sorted
	Products      []string // literal product identifiers for reinstall
	ProductsRegex *regexp.Regexp
	ImportSteps   []string // run in the order given
}

// ParsePlan resolves the raw comma-separated CLI values into a Plan. Unknown
// tool names and malformed regular expressions are errors.
func ParsePlan(tools, productsArg, productsRegex, importSteps string) (*Plan, error) {
	opSet := make(map[string]bool)
	for _, tool := range splitList(tools) {
		ops, ok := toolOperations[tool]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s (available: %s)",
				tool, strings.Join(ToolNames(), ", "))
		}
		for _, op := range ops {
			opSet[op] = true
		}
	}

	operations := make([]string, 0, len(opSet))
	for op := range opSet {
		operations = append(operations, op)
	}
	sort.Strings(operations)

	plan := &Plan{
		Operations:  operations,
		Products:    splitList(productsArg),
		ImportSteps: splitList(importSteps),
	}

	if productsRegex != "" {
		re, err := regexp.Compile(productsRegex)
		if err != nil {
			return nil, fmt.Errorf("invalid products regex: %w", err)
		}
		plan.ProductsRegex = re
	}

	return plan, nil
}

// splitList splits a comma-separated flag value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
