package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "add <game-id> <name> <email>",
		Short: "Register a player in a game (requires the game password)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[0], "game-id")
			if err != nil {
				return err
			}

			body := map[string]string{
				"name":     args[1],
				"email":    args[2],
				"password": password,
			}

			var result Player
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/players", gameID), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Game join password")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <game-id>",
		Short: "List the players in a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[0], "game-id")
			if err != nil {
				return err
			}

			var result []Player
			if err := client.Get(fmt.Sprintf("/api/v1/games/%d/players", gameID), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id> <player-id>",
		Short: "Remove a player from a game (requires owner key)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[0], "game-id")
			if err != nil {
				return err
			}
			playerID, err := parseID(args[1], "player-id")
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%d/players/%d", gameID, playerID)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %d removed from game %d", playerID, gameID))
			return nil
		},
	}
}
