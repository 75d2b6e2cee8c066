package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreatedGame:
		o.printCreatedGame(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Assignment:
		o.printAssignment(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
type Game struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreatedGame includes the one-time owner key
type CreatedGame struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OwnerKey string `json:"owner_key"`
}

// Player response type
type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	GameID int64  `json:"game_id"`
}

// Pair response type
type Pair struct {
	Giver    Player `json:"giver"`
	Receiver Player `json:"receiver"`
}

// Assignment response type
type Assignment struct {
	Pairs []Pair `json:"pairs"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCreatedGame(g CreatedGame) {
	fmt.Printf("Game:      %s (id %d)\n", g.Name, g.ID)
	fmt.Printf("Owner key: %s\n", g.OwnerKey)
	fmt.Println("Save the owner key now; it will not be shown again.")
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (id %d)\n", g.Name, g.ID)
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No games")
		return
	}
	for _, g := range games {
		o.printGame(g)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s <%s> (id %d, game %d)\n", p.Name, p.Email, p.ID, p.GameID)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	for _, p := range players {
		o.printPlayer(p)
	}
}

func (o *Output) printAssignment(a Assignment) {
	for _, pair := range a.Pairs {
		fmt.Printf("%s -> %s\n", pair.Giver.Name, pair.Receiver.Name)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
