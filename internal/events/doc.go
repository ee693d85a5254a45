// Package events publishes simulation progress to the outside world. The
// scheduler reports starts and completions through its Observer interface;
// Bridge adapts those callbacks into Events and hands them to a Publisher.
//
// Two publishers ship with the package: JSONLines writes one JSON object per
// line to any io.Writer, and SocketIO emits each event to a socket.io server.
package events
