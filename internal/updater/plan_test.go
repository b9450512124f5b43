package updater

import (
	"reflect"
	"testing"
)

func TestParsePlanSelectsExactTools(t *testing.T) {
	plan, err := ParsePlan("reinstall,catalog", "foo,bar", "", "")
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	wantOps := []string{OpRebuildCatalog, OpReinstallProducts}
	if !reflect.DeepEqual(plan.Operations, wantOps) {
		t.Errorf("Expected operations %v, got %v", wantOps, plan.Operations)
	}

	wantProducts := []string{"foo", "bar"}
	if !reflect.DeepEqual(plan.Products, wantProducts) {
		t.Errorf("Expected products %v, got %v", wantProducts, plan.Products)
	}
}

func TestParsePlanAllExpands(t *testing.T) {
	plan, err := ParsePlan("all", "", "", "")
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	if len(plan.Operations) != 5 {
		t.Errorf("Expected all 5 operations, got %v", plan.Operations)
	}
}

func TestParsePlanDeduplicates(t *testing.T) {
	plan, err := ParsePlan("all,catalog,catalog", "", "", "")
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	seen := map[string]bool{}
	for _, op := range plan.Operations {
		if seen[op] {
			t.Errorf("Operation %s duplicated", op)
		}
		seen[op] = true
	}
}

func TestParsePlanUnknownTool(t *testing.T) {
	if _, err := ParsePlan("catalog,frobnicate", "", "", ""); err == nil {
		t.Fatal("Expected error for unknown tool")
	}
}

func TestParsePlanBadRegex(t *testing.T) {
	if _, err := ParsePlan("reinstall", "", "si(teup", ""); err == nil {
		t.Fatal("Expected error for malformed regex")
	}
}

func TestParsePlanImportSteps(t *testing.T) {
	plan, err := ParsePlan("all", "", "", "default-pages, workflow-defaults")
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	want := []string{"default-pages", "workflow-defaults"}
	if !reflect.DeepEqual(plan.ImportSteps, want) {
		t.Errorf("Expected steps %v, got %v", want, plan.ImportSteps)
	}
}

func TestParsePlanBlankEntriesDropped(t *testing.T) {
	plan, err := ParsePlan("catalog,", ",foo,", "", "")
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}

	if len(plan.Operations) != 1 || len(plan.Products) != 1 {
		t.Errorf("Expected blanks dropped, got %v / %v", plan.Operations, plan.Products)
	}
}
