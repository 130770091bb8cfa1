package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shpemaes-utep/chapterapp/internal"
)

func renderSections(w io.Writer, sections []internal.EventSection, showPast bool) {
	if len(sections) == 0 {
		if showPast {
			fmt.Fprintln(w, "No events found. There are no events in the calendar.")
		} else {
			fmt.Fprintln(w, "No upcoming events. Check back later!")
		}
		return
	}

	for _, section := range sections {
		if section.IsDivider {
			fmt.Fprintf(w, "\n──── %s ────\n", section.Title)
			continue
		}
		fmt.Fprintf(w, "\n%s\n", strings.ToUpper(section.Title))
		for _, item := range section.Items {
			renderItem(w, item)
		}
	}
}

func renderItem(w io.Writer, item internal.EventItem) {
	fmt.Fprintf(w, "  %-8s  %-22s  %s @ %s\n", item.Date, item.TimeDisplay(), item.Title, item.Location)
	if item.Description != "" {
		fmt.Fprintf(w, "            %s\n", item.Description)
	}
}
