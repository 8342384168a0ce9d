package main

import "github.com/happywht/gg-mange/app"

func main() {
	app.New(nil).Run()
}
