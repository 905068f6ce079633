package main

// Set at link time:
//
//	go build -ldflags "-X main.Version=$(git describe --tags) -X 'main.Compile=$(date) $(go version)'"
var (
	Version = "unknown"
	Compile = "unknown"
)
