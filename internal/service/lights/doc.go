// Package lights implements the light commands: list, name, blink and the
// all-on/all-off switches.
//
// Every command connects through the shared credentials flow, so a first run
// transparently pairs with the bridge before doing its actual work.
package lights
