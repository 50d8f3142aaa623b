package procstatus

// Message is what a Renderer displays.
type Message struct {
	State   State
	Text    string
	Spinner bool // show a busy indicator before Text
}

// Renderer displays monitor messages. Render is called from the goroutine
// running the monitor; hosts with a UI thread must hand the message over.
type Renderer interface {
	Render(Message)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Message)

// Render calls f(m).
func (f RendererFunc) Render(m Message) {
	f(m)
}

const unreachableText = "Cannot retrieve process status from server."

func completeMessage(label string) Message {
	return Message{State: Completed, Text: label + " is complete."}
}

func failedMessage(label string) Message {
	return Message{State: Failed, Text: label + " failed."}
}

func progressMessage(label, status string) Message {
	return Message{State: Polling, Text: label + " is in progress - " + status + ".", Spinner: true}
}

func stalledMessage(label string) Message {
	return Message{State: Stalled, Text: label + " appears to have stalled on the server. Giving up."}
}

func unreachableMessage() Message {
	return Message{State: Unreachable, Text: unreachableText}
}
