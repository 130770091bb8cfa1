package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shpemaes-utep/chapterapp/internal/about"
	"github.com/shpemaes-utep/chapterapp/internal/config"
)

var AboutCommand = _aboutCommand{
	Name:        "about",
	Description: "Show the chapter's mission, vision and pillars",
}

type _aboutCommand struct {
	Name        string
	Description string
}

func (c _aboutCommand) Run(_ context.Context, _ *config.Config, _ bool, _ []string) error {
	w := os.Stdout

	fmt.Fprintln(w, about.Name)
	fmt.Fprintln(w, about.Tagline)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Our Mission")
	fmt.Fprintln(w, " ", about.Mission)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Our Vision")
	fmt.Fprintln(w, " ", about.Vision)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Our 6 Pillars")
	for _, pillar := range about.Pillars {
		fmt.Fprintf(w, "  %s — %s\n", pillar.Title, pillar.Description)
	}
	fmt.Fprintln(w)
	for _, link := range about.SocialLinks {
		fmt.Fprintf(w, "  %-10s %s\n", link.Name, link.URL)
	}
	return nil
}
