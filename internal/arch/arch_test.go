// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

const mod = "multicomponent/"

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// under reports whether path is pkg itself or nested below it.
func under(path, pkg string) bool {
	if strings.HasSuffix(pkg, "/") {
		return strings.HasPrefix(path, pkg)
	}
	return path == pkg || strings.HasPrefix(path, pkg+"/")
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", mod+"...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	surface := []string{
		mod + "internal/appcore", mod + "internal/app", mod + "internal/targetsapp",
		mod + "internal/cli", mod + "internal/targetcli", mod + "internal/clibase",
		mod + "cmd/",
	}
	extractor := append([]string{
		mod + "internal/writers", mod + "internal/output", mod + "internal/plot",
	}, surface...)

	bans := map[string][]string{
		mod + "internal/field":     extractor,
		mod + "internal/plate":     extractor,
		mod + "internal/signal":    extractor,
		mod + "internal/container": extractor,
		mod + "internal/textin":    extractor,
		mod + "internal/eds":       extractor,
		mod + "internal/amp":       extractor,
		mod + "internal/targets":   extractor,
		mod + "internal/output":    surface,
		mod + "internal/writers":   surface,
		mod + "internal/plot":      append([]string{mod + "internal/eds", mod + "internal/amp"}, surface...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			if !strings.HasPrefix(dep, mod) {
				continue
			}
			for _, ban := range forbidden {
				if under(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
