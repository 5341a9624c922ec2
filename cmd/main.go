package main

import (
	"os"
	"time"
)

func main() {
	_ = runApp()
	time.Sleep(10 * time.Second)
	os.Exit(1)
}
