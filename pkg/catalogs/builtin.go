package catalogs

import (
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Default action timeouts and paths for the builtin runner types.
const (
	localRunnerDefaultTimeout  = 60
	remoteRunnerDefaultTimeout = 60
	pythonRunnerDefaultTimeout = 600
	remoteRunnerDefaultDir     = "/tmp"
)

// Builtin returns the catalog of canonical runner types shipped with the
// system. The catalog is rebuilt on every call so callers can never mutate
// the canonical data.
func Builtin() Catalog {
	return New(builtinDefinitions()...)
}

func builtinDefinitions() []runnertypes.Definition {
	return []runnertypes.Definition{
		{
			Name:         "run-local",
			Description:  "A runner to execute local actions as a fixed user.",
			Enabled:      true,
			RunnerModule: "runners/local",
			Parameters: map[string]runnertypes.ParameterSpec{
				"cmd": {
					Description: "Arbitrary Linux command to be executed on the host.",
					Type:        runnertypes.ParameterTypeString,
				},
				"cwd": {
					Description: "Working directory where the command will be executed in.",
					Type:        runnertypes.ParameterTypeString,
				},
				"env": {
					Description: "Environment variables which will be available to the command (e.g. key1=val1,key2=val2).",
					Type:        runnertypes.ParameterTypeObject,
				},
				"sudo": {
					Description: "The command will be executed with sudo.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     false,
				},
				"kwarg_op": {
					Description: `Operator to use in front of keyword args i.e. "--" or "-".`,
					Type:        runnertypes.ParameterTypeString,
					Default:     "--",
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     localRunnerDefaultTimeout,
				},
			},
		},
		{
			Name:         "run-local-script",
			Description:  "A runner to execute local script actions as a fixed user.",
			Enabled:      true,
			RunnerModule: "runners/local",
			Parameters: map[string]runnertypes.ParameterSpec{
				"cwd": {
					Description: "Working directory where the script will be executed in.",
					Type:        runnertypes.ParameterTypeString,
				},
				"env": {
					Description: "Environment variables which will be available to the script (e.g. key1=val1,key2=val2).",
					Type:        runnertypes.ParameterTypeObject,
				},
				"sudo": {
					Description: "The script will be executed with sudo.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     false,
				},
				"kwarg_op": {
					Description: `Operator to use in front of keyword args i.e. "--" or "-".`,
					Type:        runnertypes.ParameterTypeString,
					Default:     "--",
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     localRunnerDefaultTimeout,
				},
			},
		},
		{
			Name:         "run-remote",
			Description:  "A remote execution runner that executes actions as a fixed system user.",
			Enabled:      true,
			RunnerModule: "runners/remote",
			Parameters: map[string]runnertypes.ParameterSpec{
				"hosts": {
					Description: "A comma delimited string of a list of hosts where the remote command will be executed.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"username": {
					Description: "Username used to log-in. If not provided, default username from config is used.",
					Type:        runnertypes.ParameterTypeString,
				},
				"password": {
					Description: "Password used to log in. If not provided, private key from the config file is used.",
					Type:        runnertypes.ParameterTypeString,
				},
				"private_key": {
					Description: "Private key used to log in. If not provided, private key from the config file is used.",
					Type:        runnertypes.ParameterTypeString,
				},
				"cmd": {
					Description: "Arbitrary Linux command to be executed on the remote host(s).",
					Type:        runnertypes.ParameterTypeString,
				},
				"cwd": {
					Description: "Working directory where the command will be executed in.",
					Type:        runnertypes.ParameterTypeString,
				},
				"env": {
					Description: "Environment variables which will be available to the command (e.g. key1=val1,key2=val2).",
					Type:        runnertypes.ParameterTypeObject,
				},
				"parallel": {
					Description: "Default to parallel execution.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     true,
					Immutable:   true,
				},
				"sudo": {
					Description: "The remote command will be executed with sudo.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     false,
				},
				"dir": {
					Description: "The working directory where the script will be copied to on the remote host.",
					Type:        runnertypes.ParameterTypeString,
					Default:     remoteRunnerDefaultDir,
					Immutable:   true,
				},
				"kwarg_op": {
					Description: `Operator to use in front of keyword args i.e. "--" or "-".`,
					Type:        runnertypes.ParameterTypeString,
					Default:     "--",
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     remoteRunnerDefaultTimeout,
				},
			},
		},
		{
			Name:         "run-remote-script",
			Description:  "A remote execution runner that executes script actions as a fixed system user.",
			Enabled:      true,
			RunnerModule: "runners/remote",
			Parameters: map[string]runnertypes.ParameterSpec{
				"hosts": {
					Description: "A comma delimited string of a list of hosts where the remote command will be executed.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"username": {
					Description: "Username used to log-in. If not provided, default username from config is used.",
					Type:        runnertypes.ParameterTypeString,
				},
				"password": {
					Description: "Password used to log in. If not provided, private key from the config file is used.",
					Type:        runnertypes.ParameterTypeString,
				},
				"private_key": {
					Description: "Private key used to log in. If not provided, private key from the config file is used.",
					Type:        runnertypes.ParameterTypeString,
				},
				"parallel": {
					Description: "Default to parallel execution.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     true,
					Immutable:   true,
				},
				"cwd": {
					Description: "Working directory where the script will be executed in.",
					Type:        runnertypes.ParameterTypeString,
					Default:     remoteRunnerDefaultDir,
				},
				"env": {
					Description: "Environment variables which will be available to the script (e.g. key1=val1,key2=val2).",
					Type:        runnertypes.ParameterTypeObject,
				},
				"sudo": {
					Description: "The remote script will be executed with sudo.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     false,
				},
				"dir": {
					Description: "The working directory where the script will be copied to on the remote host.",
					Type:        runnertypes.ParameterTypeString,
					Default:     remoteRunnerDefaultDir,
				},
				"kwarg_op": {
					Description: `Operator to use in front of keyword args i.e. "--" or "-".`,
					Type:        runnertypes.ParameterTypeString,
					Default:     "--",
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     remoteRunnerDefaultTimeout,
				},
			},
		},
		{
			Name:         "http-runner",
			Description:  "A HTTP client for running HTTP actions.",
			Enabled:      true,
			RunnerModule: "runners/http",
			Parameters: map[string]runnertypes.ParameterSpec{
				"url": {
					Description: "URL to the HTTP endpoint.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"headers": {
					Description: "HTTP headers for the request.",
					Type:        runnertypes.ParameterTypeString,
				},
				"cookies": {
					Description: "Optional cookies to send with the request.",
					Type:        runnertypes.ParameterTypeObject,
				},
				"http_proxy": {
					Description: "A URL of a HTTP proxy to use (e.g. http://10.10.1.10:3128).",
					Type:        runnertypes.ParameterTypeString,
				},
				"https_proxy": {
					Description: "A URL of a HTTPs proxy to use (e.g. http://10.10.1.10:3128).",
					Type:        runnertypes.ParameterTypeString,
				},
				"allow_redirects": {
					Description: "Set to true if POST/PUT/DELETE redirect following is allowed.",
					Type:        runnertypes.ParameterTypeBoolean,
					Default:     false,
				},
			},
		},
		{
			Name:         "mistral-v1",
			Description:  "A runner for executing mistral v1 workflows.",
			Enabled:      true,
			RunnerModule: "runners/mistral/v1",
			Parameters: map[string]runnertypes.ParameterSpec{
				"workbook": {
					Description: "The name of the workbook.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"task": {
					Description: "The startup task in the workbook to execute.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"context": {
					Description: "Context for the startup task.",
					Type:        runnertypes.ParameterTypeObject,
					Default:     map[string]any{},
				},
			},
		},
		{
			Name:         "mistral-v2",
			Description:  "A runner for executing mistral v2 workflows.",
			Enabled:      true,
			RunnerModule: "runners/mistral/v2",
			QueryModule:  "queries/mistral/v2",
			Parameters: map[string]runnertypes.ParameterSpec{
				"workflow": {
					Description: "The name of the workflow to run if the entry point is a workbook of many workflows.",
					Type:        runnertypes.ParameterTypeString,
				},
				"task": {
					Description: "The name of the task to run for reverse workflow.",
					Type:        runnertypes.ParameterTypeString,
				},
				"context": {
					Description: "Additional workflow inputs.",
					Type:        runnertypes.ParameterTypeObject,
					Default:     map[string]any{},
				},
			},
		},
		{
			Name:         "action-chain",
			Description:  "A runner for launching linear action chains.",
			Enabled:      true,
			RunnerModule: "runners/actionchain",
			Parameters:   map[string]runnertypes.ParameterSpec{},
		},
		{
			Name:         "run-python",
			Description:  "A runner for launching python actions.",
			Enabled:      true,
			RunnerModule: "runners/python",
			Parameters: map[string]runnertypes.ParameterSpec{
				"env": {
					Description: "Environment variables which will be available to the script (e.g. key1=val1,key2=val2).",
					Type:        runnertypes.ParameterTypeObject,
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     pythonRunnerDefaultTimeout,
				},
			},
		},

		// Experimental runners below.
		{
			Name:         "run-windows-cmd",
			Description:  "A remote execution runner that executes commands on Windows hosts.",
			Enabled:      true,
			Experimental: true,
			RunnerModule: "runners/wincmd",
			Parameters: map[string]runnertypes.ParameterSpec{
				"host": {
					Description: "Host to execute the command on.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"username": {
					Description: "Username used to log-in.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"password": {
					Description: "Password used to log in.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"cmd": {
					Description: "Arbitrary command to be executed on the remote host.",
					Type:        runnertypes.ParameterTypeString,
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     remoteRunnerDefaultTimeout,
				},
			},
		},
		{
			Name:         "run-windows-script",
			Description:  "A remote execution runner that executes power shell scripts on Windows hosts.",
			Enabled:      true,
			Experimental: true,
			RunnerModule: "runners/winscript",
			Parameters: map[string]runnertypes.ParameterSpec{
				"host": {
					Description: "Host to execute the command on.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"username": {
					Description: "Username used to log-in.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"password": {
					Description: "Password used to log in.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"share": {
					Description: "Name of the Windows share where script files are uploaded.",
					Type:        runnertypes.ParameterTypeString,
					Required:    true,
				},
				"timeout": {
					Description: "Action timeout in seconds. Action will get killed if it doesn't finish in timeout seconds.",
					Type:        runnertypes.ParameterTypeInteger,
					Default:     remoteRunnerDefaultTimeout,
				},
			},
		},
	}
}
