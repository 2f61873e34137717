package service

import "strings"

type NavItem struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

var navItems = []NavItem{
	{Path: "/", Label: "Dashboard", Icon: "home"},
	{Path: "/profile", Label: "Profile", Icon: "user"},
	{Path: "/food-log", Label: "Food Log", Icon: "utensils"},
	{Path: "/history", Label: "History", Icon: "bar-chart"},
	{Path: "/settings", Label: "Settings", Icon: "settings"},
}

// NavItems marks the item for current active: "/" only on exact match,
// the rest by prefix.
func NavItems(current string) []NavItem {
	out := make([]NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = isActive(item.Path, current)
		out[i] = item
	}
	return out
}

func isActive(path, current string) bool {
	if path == "/" {
		return current == "/"
	}
	return strings.HasPrefix(current, path)
}
