package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/fatih/color"
)

var portFlag = flag.Int("port", 1029, "TCP `port` to listen on")
var docrootFlag = flag.String("docroot", "www", "document root `directory`")

func main() {
	flag.Parse()
	root, err := NewDocRoot(*docrootFlag)
	if err != nil {
		log.Fatalln(err)
	}
	listener, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", *portFlag))
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(color.GreenString("Listening on port %d, serving %s", *portFlag, root.Base()))
	NewServer(listener, root).AcceptLoop()
}
