package telnet

import (
	"bufio"
	"fmt"
	"net"
	"strings"

	"trivia/internal/display"
)

// term adapts one TCP connection to the engine.Terminal contract.
type term struct {
	conn net.Conn
	r    *bufio.Reader
}

func newTerm(conn net.Conn) *term {
	return &term{conn: conn, r: bufio.NewReader(conn)}
}

func (t *term) readLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *term) WriteLine(s string) {
	fmt.Fprintf(t.conn, "%s\r\n", s)
}

// Ask writes the prompt and blocks for one line. Prefill is only
// meaningful on interactive terminals and is ignored on a raw socket.
func (t *term) Ask(prompt, prefill string) (string, error) {
	fmt.Fprint(t.conn, prompt)
	return t.readLine()
}

func (t *term) Prompt() {
	fmt.Fprint(t.conn, display.Prompt("trivia"))
}

func (t *term) Close() error {
	return t.conn.Close()
}
