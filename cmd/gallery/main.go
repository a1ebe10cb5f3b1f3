package main

import (
	"fmt"
	"log"

	"github.com/IsakTheHacker/FTXUI/component"
	"github.com/IsakTheHacker/FTXUI/render"
)

func main() {
	status := "Ready"

	clicks := 0
	button := component.NewButton("OK", func() {
		clicks++
		status = fmt.Sprintf("Clicked %d times", clicks)
	})
	animated := component.NewAnimatedButton("Animated", func() {
		status = "Animated button clicked"
	})

	checked := false
	checkbox := component.NewCheckboxWith("Enable feature", &checked, component.CheckboxOption{
		OnChange: func() {
			status = fmt.Sprintf("Feature enabled: %v", checked)
		},
	})

	entries := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	selected := 0
	menu := component.NewMenuWith(entries, &selected, component.MenuOption{
		OnChange: func() {
			status = "Selected " + entries[selected]
		},
		OnEnter: func() {
			status = "Chose " + entries[selected]
		},
	})

	mode := 0
	toggle := component.NewToggle([]string{"On", "Off"}, &mode)

	flavors := []string{"Vanilla", "Chocolate", "Strawberry"}
	flavor := 0
	radio := component.NewRadioboxWith(flavors, &flavor, component.RadioboxOption{
		OnChange: func() {
			status = "Flavor: " + flavors[flavor]
		},
	})

	input := component.NewInputWith(component.InputOption{
		Placeholder: "Type here...",
		OnEnter: func(text string) {
			status = "Submitted: " + text
		},
	})

	statusLine := component.Renderer(func() render.Element {
		return render.Text(status)
	})

	root := component.Vertical(
		component.Horizontal(button, animated),
		checkbox,
		toggle,
		radio,
		menu,
		input,
		statusLine,
	)

	app, err := component.NewApp(root)
	if err != nil {
		log.Fatal(err)
	}
	button.TakeFocus()
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
