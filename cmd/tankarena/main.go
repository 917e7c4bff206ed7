// Command tankarena runs tank-combat simulations in one of three
// modes (Basic, Comparative, Competitive) selected by which CLI
// tokens are present, per spec.md §6.
package main

import "github.com/ezynda3/tank-arena/cmd/tankarena/cliapp"

func main() {
	cliapp.Execute()
}
