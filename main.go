package main

import "github.com/sanixdarker/gql-jddf/internal/cli"

func main() {
	cli.Execute()
}
