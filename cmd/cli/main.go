package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/datachart/internal/cli"
)

func main() {

	ctx := context.Background()
	endpoint, command := cli.ParseArgs(os.Args[1:])

	app := cli.NewApp(endpoint)

	if err := app.Run(ctx, command); err != nil {
		log.Fatalf("%v", err)
	}

}
