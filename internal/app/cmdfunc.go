package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/jkingslake/gridsweep"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
)

// envPrefix is prepended to upper-cased parameter names in the child
// process environment.
const envPrefix = "GRIDSWEEP_"

// commandFunc builds a sweep function that runs command once per combination.
// Parameter values reach the child process as environment variables
// (GRIDSWEEP_<NAME>); the child's stdout must be a single JSON value — a
// number or string for scalar sweeps, an object for multi-field results.
func commandFunc(command string, args []string) gridsweep.Func {
	return func(ctx context.Context, params map[string]cty.Value) (cty.Value, error) {
		logger := ctxlog.FromContext(ctx)

		cmd := exec.CommandContext(ctx, command, args...)
		cmd.Env = os.Environ()
		for name, v := range params {
			text, err := envValue(v)
			if err != nil {
				return cty.NilVal, fmt.Errorf("app: encoding parameter %q: %w", name, err)
			}
			cmd.Env = append(cmd.Env, envPrefix+strings.ToUpper(name)+"="+text)
		}

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		logger.Debug("running combination command", "command", command)
		if err := cmd.Run(); err != nil {
			return cty.NilVal, fmt.Errorf("app: %s failed: %w (stderr: %s)",
				command, err, strings.TrimSpace(stderr.String()))
		}

		return parseResult(stdout.Bytes())
	}
}

// envValue renders a parameter value for the child environment. Strings pass
// through raw; everything else is JSON-encoded.
func envValue(v cty.Value) (string, error) {
	if v.Type() == cty.String {
		return v.AsString(), nil
	}
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// parseResult decodes the child's stdout into a cty value.
func parseResult(out []byte) (cty.Value, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return cty.NilVal, fmt.Errorf("app: command produced no output")
	}
	ty, err := ctyjson.ImpliedType(trimmed)
	if err != nil {
		return cty.NilVal, fmt.Errorf("app: command output is not valid JSON: %w", err)
	}
	v, err := ctyjson.Unmarshal(trimmed, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("app: decoding command output: %w", err)
	}
	return v, nil
}
