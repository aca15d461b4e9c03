// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"sort"
	"strings"

	"bringup-cli/pkg/launchspec"
)

// ParamEnvPrefix prefixes the environment variables a binding is projected
// into, so launch scripts can introspect their parameters.
const ParamEnvPrefix = "BRINGUP_PARAM_"

// ParamArgs renders a binding as "name:=value" argument pairs in binding
// order, the convention subsystem launch entry points accept.
func ParamArgs(binding *launchspec.Binding) []string {
	if binding == nil {
		return nil
	}
	args := make([]string, 0, binding.Len())
	for _, p := range binding.Pairs() {
		args = append(args, fmt.Sprintf("%s:=%s", p.Name, p.Value))
	}
	return args
}

// ParamEnv projects a binding into environment variables: each parameter
// becomes BRINGUP_PARAM_<NAME> with hyphens mapped to underscores and the
// name upper-cased.
func ParamEnv(binding *launchspec.Binding) map[string]string {
	if binding == nil {
		return map[string]string{}
	}
	env := make(map[string]string, binding.Len())
	for _, p := range binding.Pairs() {
		env[ParamNameToEnvVar(p.Name)] = p.Value
	}
	return env
}

// ParamNameToEnvVar converts a parameter name to its projected environment
// variable name.
func ParamNameToEnvVar(name string) string {
	mapped := strings.ReplaceAll(name, "-", "_")
	return ParamEnvPrefix + strings.ToUpper(mapped)
}

// bindingLen is a nil-safe binding length for log fields.
func bindingLen(b *launchspec.Binding) int {
	if b == nil {
		return 0
	}
	return b.Len()
}

// EnvToSlice converts an environment map to "KEY=VALUE" strings sorted by
// key for deterministic process environments.
func EnvToSlice(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
