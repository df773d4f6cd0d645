package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
)

var (
	characterName string
	withComputed  bool
	characterFile string
	itemQuantity  int
	preferredSlot string
)

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List characters, newest first",
	RunE:  runListCharacters,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Get a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetCharacter,
}

var createCharacterCmd = &cobra.Command{
	Use:   "create-character",
	Short: "Create a character from a JSON document",
	Long:  `Create a character from a JSON document read from --file, or stdin when the file is "-".`,
	RunE:  runCreateCharacter,
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up [character-id]",
	Short: "Advance a character one level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelUp,
}

var skillCheckCmd = &cobra.Command{
	Use:   "skill-check [character-id] [skill]",
	Short: "Roll a d20 skill check for a character",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkillCheck,
}

var addItemCmd = &cobra.Command{
	Use:   "add-item [character-id] [item-id]",
	Short: "Put an item into a character's inventory",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddItem,
}

var equipCmd = &cobra.Command{
	Use:   "equip [character-id] [item-id]",
	Short: "Equip a carried item",
	Args:  cobra.ExactArgs(2),
	RunE:  runEquip,
}

func init() {
	listCharactersCmd.Flags().StringVar(&characterName, "name", "", "Only characters whose name starts with this")
	getCharacterCmd.Flags().BoolVar(&withComputed, "computed", false, "Include derived values")
	createCharacterCmd.Flags().StringVar(&characterFile, "file", "-", "Character JSON document")
	addItemCmd.Flags().IntVar(&itemQuantity, "quantity", 1, "How many to add")
	equipCmd.Flags().StringVar(&preferredSlot, "slot", "", "Preferred hand for one-handed weapons (mainHand or offHand)")
}

func characterPath(id string, rest ...string) string {
	path := "/characters/" + url.PathEscape(id)
	for _, r := range rest {
		path += "/" + url.PathEscape(r)
	}
	return path
}

func printCharacter(c *entities.Character) {
	fmt.Printf("%s (ID: %s)\n", c.Name, c.ID)
	fmt.Printf("   Level %d  XP %d\n", c.Level, c.Experience)
	fmt.Printf("   HP %d/%d", c.HP, c.MaxHP)
	if c.Mana != nil && c.MaxMana != nil {
		fmt.Printf("  Mana %d/%d", *c.Mana, *c.MaxMana)
	}
	fmt.Println()
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	var query url.Values
	if characterName != "" {
		query = url.Values{"name": {characterName}}
	}

	var characters []*entities.Character
	env, err := call(http.MethodGet, "/characters", query, nil, &characters)
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	fmt.Printf("Found %d characters:\n\n", len(characters))
	for _, c := range characters {
		printCharacter(c)
	}
	return nil
}

func runGetCharacter(_ *cobra.Command, args []string) error {
	var query url.Values
	if withComputed {
		query = url.Values{"computed": {"true"}}
	}

	var view struct {
		entities.Character
		Computed *engine.Computed `json:"computed"`
	}
	env, err := call(http.MethodGet, characterPath(args[0]), query, nil, &view)
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	printCharacter(&view.Character)
	if view.Computed != nil {
		fmt.Printf("   AC %d  Speed %d  Max spell circle %d\n",
			view.Computed.TotalArmorClass, view.Computed.TotalSpeed, view.Computed.MaxSpellCircle)
		for _, a := range view.Computed.AvailableAbilities {
			fmt.Printf("   - %s\n", a.Name)
		}
	}
	return nil
}

func runCreateCharacter(_ *cobra.Command, _ []string) error {
	input := &entities.Character{}
	if err := readJSONFile(characterFile, input); err != nil {
		return err
	}

	created := &entities.Character{}
	env, err := call(http.MethodPost, "/characters", nil, input, created)
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	printCharacter(created)
	return nil
}

func runLevelUp(_ *cobra.Command, args []string) error {
	c := &entities.Character{}
	env, err := call(http.MethodPost, characterPath(args[0], "level-up"), nil, nil, c)
	if err != nil {
		return fmt.Errorf("failed to level up: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	printCharacter(c)
	return nil
}

func runSkillCheck(_ *cobra.Command, args []string) error {
	check := &engine.SkillCheck{}
	env, err := call(http.MethodPost, characterPath(args[0], "skill-checks", args[1]), nil, nil, check)
	if err != nil {
		return fmt.Errorf("failed to roll skill check: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	fmt.Printf("%s: rolled %d %+d = %d", check.Skill, check.Roll, check.Modifier, check.Total)
	if check.IsProficient {
		fmt.Print(" (proficient)")
	}
	fmt.Println()
	return nil
}

func runAddItem(_ *cobra.Command, args []string) error {
	c := &entities.Character{}
	env, err := call(http.MethodPost, characterPath(args[0], "items", args[1]), nil,
		map[string]int{"quantity": itemQuantity}, c)
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	for _, entry := range c.Items {
		fmt.Printf("%s x%d\n", entry.ItemID, entry.Quantity)
	}
	return nil
}

func runEquip(_ *cobra.Command, args []string) error {
	var body any
	if preferredSlot != "" {
		body = map[string]string{"preferredSlot": preferredSlot}
	}

	c := &entities.Character{}
	env, err := call(http.MethodPost, characterPath(args[0], "equip", args[1]), nil, body, c)
	if err != nil {
		return fmt.Errorf("failed to equip item: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	for _, slot := range entities.AllSlots {
		if id := c.EquippedSlots.Get(slot); id != "" {
			fmt.Printf("%-9s %s\n", slot, id)
		}
	}
	return nil
}
