package mapper

import (
	"context"
	"os"
	"strings"
)

func ExampleMapper_Run() {
	input := "DATE" + strings.Repeat(",COL", 30) + "\n" +
		",,,,,,,,,,,,,,,,,,,,,,,,,,,,A,B,,D,\n"
	if _, err := New(DefaultConfig()).Run(context.Background(), strings.NewReader(input), os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// A	1
	// B	1
	// D	1
}
