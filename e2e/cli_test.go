package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/secretsanta-go/internal/api"
	"github.com/mcoot/secretsanta-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "santa-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/santa")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithKey(ownerKey string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--owner-key", ownerKey,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type createdGameResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OwnerKey string `json:"owner_key"`
}

type gameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type playerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	GameID int64  `json:"game_id"`
}

type assignmentResponse struct {
	Pairs []struct {
		Giver    playerResponse `json:"giver"`
		Receiver playerResponse `json:"receiver"`
	} `json:"pairs"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_GameCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create game
	output, err := cli.run("game", "create", "Office Party", "--password", "xmas2024")
	require.NoError(t, err, "output: %s", output)

	var created createdGameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "Office Party", created.Name)
	assert.NotZero(t, created.ID)
	assert.GreaterOrEqual(t, len(created.OwnerKey), 10)
	assert.LessOrEqual(t, len(created.OwnerKey), 20)

	// List games
	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)

	var games []gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 1)
	assert.Equal(t, created.ID, games[0].ID)

	// Get game
	output, err = cli.run("game", "get", fmt.Sprintf("%d", created.ID))
	require.NoError(t, err, "output: %s", output)

	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "Office Party", game.Name)

	// Delete with wrong key fails
	output, err = cli.runWithKey("wrong-key", "game", "delete", fmt.Sprintf("%d", created.ID))
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "owner key")

	// Delete with the real key succeeds
	output, err = cli.runWithKey(created.OwnerKey, "game", "delete", fmt.Sprintf("%d", created.ID))
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, "deleted")

	// Game is gone
	output, err = cli.run("game", "get", fmt.Sprintf("%d", created.ID))
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("game", "create", "Office Party", "--password", "xmas2024")
	require.NoError(t, err, "output: %s", output)
	var created createdGameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	gameID := fmt.Sprintf("%d", created.ID)

	// Wrong password is rejected
	output, err = cli.run("player", "add", gameID, "mallory", "mallory@example.com", "--password", "wrong")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "password")

	// Add players with the correct password
	output, err = cli.run("player", "add", gameID, "alice", "alice@example.com", "--password", "xmas2024")
	require.NoError(t, err, "output: %s", output)
	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &alice))
	assert.Equal(t, "alice", alice.Name)
	assert.Equal(t, created.ID, alice.GameID)

	output, err = cli.run("player", "add", gameID, "bob", "bob@example.com", "--password", "xmas2024")
	require.NoError(t, err, "output: %s", output)

	// List players
	output, err = cli.run("player", "list", gameID)
	require.NoError(t, err, "output: %s", output)
	var players []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	assert.Len(t, players, 2)

	// Remove a player (owner key required)
	output, err = cli.runWithKey(created.OwnerKey, "player", "remove", gameID, fmt.Sprintf("%d", alice.ID))
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("player", "list", gameID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "bob", players[0].Name)
}

func TestCLI_FullSessionFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("game", "create", "Office Party", "--password", "xmas2024")
	require.NoError(t, err, "output: %s", output)
	var created createdGameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	gameID := fmt.Sprintf("%d", created.ID)
	t.Logf("Created game %s", gameID)

	names := []string{"alice", "bob", "carol", "dave"}
	for _, name := range names {
		output, err = cli.run("player", "add", gameID, name, name+"@example.com", "--password", "xmas2024")
		require.NoError(t, err, "add %s: %s", name, output)
	}

	// Draw with too few players would have failed earlier; with 4 it succeeds
	output, err = cli.runWithKey(created.OwnerKey, "draw", gameID)
	require.NoError(t, err, "output: %s", output)

	var result assignmentResponse
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Pairs, 4)

	givers := make(map[string]int)
	receivers := make(map[string]int)
	for _, pair := range result.Pairs {
		assert.NotEqual(t, pair.Giver.ID, pair.Receiver.ID)
		givers[pair.Giver.Name]++
		receivers[pair.Receiver.Name]++
	}
	for _, name := range names {
		assert.Equal(t, 1, givers[name], "giver %s", name)
		assert.Equal(t, 1, receivers[name], "receiver %s", name)
	}
	t.Logf("Draw produced %d pairs", len(result.Pairs))

	// The game is finalized and gone
	output, err = cli.run("game", "get", gameID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_DrawRosterErrors(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("game", "create", "Tiny Party")
	require.NoError(t, err, "output: %s", output)
	var created createdGameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	gameID := fmt.Sprintf("%d", created.ID)

	for _, name := range []string{"alice", "bob"} {
		output, err = cli.run("player", "add", gameID, name, name+"@example.com")
		require.NoError(t, err, "add %s: %s", name, output)
	}

	output, err = cli.runWithKey(created.OwnerKey, "draw", gameID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not enough players")

	// An odd roster reports the uneven error
	output, err = cli.run("player", "add", gameID, "carol", "carol@example.com")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.runWithKey(created.OwnerKey, "draw", gameID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "even")
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unknown game
	output, err := cli.run("game", "get", "999")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Non-integer id is rejected client-side
	output, err = cli.run("game", "get", "abc")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "integer")

	// Draw without an owner key
	output, err = cli.run("game", "create", "Office Party")
	require.NoError(t, err, "output: %s", output)
	var created createdGameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	output, err = cli.run("draw", fmt.Sprintf("%d", created.ID))
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "owner key")
}
