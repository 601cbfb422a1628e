// Command vs is a command-line client for the vidshare gRPC API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"google.golang.org/grpc/status"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `vs CLI
Usage:
  vs -addr HOST:PORT [-cacert file | -insecure | -plaintext] <cmd> [args]

Commands:
  version
  register       -u <username> -p <password>
  login          -u <username> -p <password>          (saves token)
  videos         [-q text] [-owner id] [-page n] [-limit n] [-sort field] [-order asc|desc]
  video          -id <video>
  publish        -title t -media ref [-desc d] [-thumb ref] [-duration sec]
  edit-video     -id <video> [-title t] [-desc d] [-thumb ref]
  rm-video       -id <video>
  toggle-publish -id <video>
  like           -video <id> | -comment <id> | -tweet <id>
  liked
  subscribe      -channel <user>
  subscribers    -channel <user>
  subscriptions  -user <user>
  comments       -video <id> [-page n] [-limit n] [-q text]
  comment        -video <id> -text t
  edit-comment   -id <comment> -text t
  rm-comment     -id <comment>
  tweet          -text t
  tweets         -user <user>
  edit-tweet     -id <tweet> -text t
  rm-tweet       -id <tweet>
  playlist-new   -name n [-desc d]
  playlists      -user <user>
  playlist       -id <playlist>
  playlist-edit  -id <playlist> [-name n] [-desc d]
  playlist-add   -playlist <id> -video <id>
  playlist-rm    -playlist <id> -video <id>
  rm-playlist    -id <playlist>
`)
	os.Exit(2)
}

func main() {
	addr := flag.String("addr", "localhost:8443", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	skip := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "connect without TLS")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	name := flag.Arg(0)
	if name == "version" {
		fmt.Printf("vs %s (%s)\n", version, buildDate)
		return
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q; known: %s\n", name, strings.Join(commandNames(), ", "))
		os.Exit(2)
	}

	// a stale or missing token is fine for public commands
	var bearer string
	if tf, err := loadToken(); err == nil {
		bearer = tf.AccessToken
	}

	conn, err := dial(*addr, transport{caPath: *caPath, skipCheck: *skip, plaintext: *plaintext}, bearer)
	if err != nil {
		fail(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := cmd(ctx, env{cc: conn, out: os.Stdout, save: saveToken}, flag.Args()[1:]); err != nil {
		fail(err)
	}
}

// commandNames lists the known commands in order.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func fail(err error) {
	os.Exit(report(os.Stderr, err))
}

// report prints err and returns the process exit code.
func report(w io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 2
	}
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(w, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		return 1
	}
	fmt.Fprintln(w, err)
	return 1
}
