// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package integration

import (
	"testing"

	"github.com/sirseerhq/trello-cli/test/testutil"
)

func TestConfig_DiscoveryFromCurrentDirectory(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yaml",
		"trello:\n  base_url: "+server.URL+"\n")

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, testCredentials())

	testutil.AssertCLISuccess(t, result)
	testutil.AssertContainsString(t, result.Stdout, "Errands")
}

func TestConfig_YmlExtensionFallback(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yml",
		"trello:\n  base_url: "+server.URL+"\n")

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, testCredentials())

	testutil.AssertCLISuccess(t, result)
	testutil.AssertContainsString(t, result.Stdout, "Errands")
}

func TestConfig_HomeDirectoryFallback(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	home := t.TempDir()
	testutil.WriteHomeConfig(t, home, "trello:\n  base_url: "+server.URL+"\n")

	env := testCredentials()
	env["HOME"] = home

	result := testutil.RunCLIInDir(t, t.TempDir(), []string{"--list-boards"}, env)

	testutil.AssertCLISuccess(t, result)
	testutil.AssertContainsString(t, result.Stdout, "Errands")
}

func TestConfig_CurrentDirectoryBeatsHome(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	// The home config points nowhere; the cwd config must win.
	home := t.TempDir()
	testutil.WriteHomeConfig(t, home, "trello:\n  base_url: http://127.0.0.1:1\n")

	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yaml",
		"trello:\n  base_url: "+server.URL+"\n")

	env := testCredentials()
	env["HOME"] = home

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, env)

	testutil.AssertCLISuccess(t, result)
}

func TestConfig_EnvironmentOverridesFile(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	// The file names a dead endpoint; TRELLO_API_ENDPOINT must win.
	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yaml",
		"trello:\n  base_url: http://127.0.0.1:1\n")

	env := testCredentials()
	env["TRELLO_API_ENDPOINT"] = server.URL

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, env)

	testutil.AssertCLISuccess(t, result)
	testutil.AssertContainsString(t, result.Stdout, "Errands")
}

func TestConfig_ExplicitPath(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	path := testutil.WriteConfigFile(t, t.TempDir(), "staging.yaml",
		"trello:\n  base_url: "+server.URL+"\n")

	result := testutil.RunCLIIsolated(t,
		[]string{"--config", path, "--list-boards"}, testCredentials())

	testutil.AssertCLISuccess(t, result)
	testutil.AssertContainsString(t, result.Stdout, "Errands")
}

func TestConfig_ExplicitPathMissing(t *testing.T) {
	result := testutil.RunCLIIsolated(t,
		[]string{"--config", "/nonexistent/trello.yaml", "--list-boards"},
		testCredentials())

	testutil.AssertExitCode(t, result, 1)
	testutil.AssertCLIError(t, result, "failed to load config file")
}

func TestConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yaml", "trello: [broken\n")

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, testCredentials())

	testutil.AssertExitCode(t, result, 1)
	testutil.AssertCLIError(t, result, "failed to load config from .trello-cli.yaml")
}

func TestConfig_CustomCredentialVariables(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yaml",
		"trello:\n  base_url: "+server.URL+"\n  key_env: WORK_TRELLO_KEY\n  token_env: WORK_TRELLO_TOKEN\n")

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, map[string]string{
		"WORK_TRELLO_KEY":   testutil.TestKey,
		"WORK_TRELLO_TOKEN": testutil.TestToken,
	})

	testutil.AssertCLISuccess(t, result)
	testutil.AssertContainsString(t, result.Stdout, "Errands")
}

func TestConfig_CustomCredentialVariablesIgnoreDefaults(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	// Once the config renames the credential variables, the default
	// TRELLO_API_* names no longer count.
	dir := t.TempDir()
	testutil.WriteConfigFile(t, dir, ".trello-cli.yaml",
		"trello:\n  base_url: "+server.URL+"\n  key_env: WORK_TRELLO_KEY\n  token_env: WORK_TRELLO_TOKEN\n")

	result := testutil.RunCLIInDir(t, dir, []string{"--list-boards"}, testCredentials())

	testutil.AssertExitCode(t, result, 2)
	testutil.AssertCLIError(t, result, "--key and --token are required to interact with the Trello API.")
}
