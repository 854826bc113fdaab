// main.go
//
// Entry point; CLI handling lives in the cobra commands under cmd/.

package main

import (
	"github.com/Hasti0013/schedcompare/cmd"
)

func main() {
	cmd.Execute()
}
