package player

const (
	toolGetGameState    = "get_game_state"
	toolGetValidActions = "get_valid_actions"
	toolSelectAction    = "select_action"
)

// Tools declares the three turn tools offered to structured agents.
func Tools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name: toolGetGameState,
			Description: "Get the current game state from your perspective. " +
				"Returns your resources, buildings, victory points, and opponent information. " +
				"Use this to understand the current situation before making decisions.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name: toolGetValidActions,
			Description: "Get all valid actions you can take right now. " +
				"Returns a list of action objects with unique ids and descriptions. " +
				"Use this to see what moves are available before selecting one.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name: toolSelectAction,
			Description: "Select an action to take by providing its action_id. " +
				"This marks your choice but does NOT execute it - the game engine executes it after your selection. " +
				"You must call this with a valid action_id from get_valid_actions. " +
				"This is the final step in your turn.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"action_id": map[string]any{
						"type":        "integer",
						"description": "The id of the action you want to take. Get valid ids from get_valid_actions.",
					},
				},
				"required": []string{"action_id"},
			},
		},
	}
}
