package design

import (
	"slices"
	"strings"
)

// Destination is a sidebar navigation target.
type Destination int

const (
	DestHome Destination = iota
	DestProjects
	DestImages
	DestBrand
	DestApps
	DestSettings
)

type destinationInfo struct {
	dest  Destination
	name  string
	label string
	icon  string
}

// destinations is ordered; icon matching walks it top to bottom.
var destinations = []destinationInfo{
	{DestHome, "home", "Home", "fa-home"},
	{DestProjects, "projects", "Projects", "fa-folder-open"},
	{DestImages, "images", "Images", "fa-image"},
	{DestBrand, "brand", "Brand", "fa-palette"},
	{DestApps, "apps", "Apps", "fa-th"},
	{DestSettings, "settings", "Settings", "fa-cog"},
}

func (d Destination) String() string {
	for _, info := range destinations {
		if info.dest == d {
			return info.name
		}
	}
	return "unknown"
}

// Label is the human readable name used in log lines and the content header.
func (d Destination) Label() string {
	for _, info := range destinations {
		if info.dest == d {
			return info.label
		}
	}
	return "Unknown"
}

// ParseDestination resolves a nav button from its data-nav attribute or,
// failing that, the classes of its icon.
func ParseDestination(attr string, iconClasses []string) (Destination, bool) {
	name := strings.ToLower(strings.TrimSpace(attr))
	if name != "" {
		for _, info := range destinations {
			if info.name == name {
				return info.dest, true
			}
		}
	}
	for _, info := range destinations {
		if slices.Contains(iconClasses, info.icon) {
			return info.dest, true
		}
	}
	return DestHome, false
}
