//go:build !js

// internal/ui/js_bridge_other.go
package ui

func (g *Game) initJS()        {}
func (g *Game) reportStateJS() {}
