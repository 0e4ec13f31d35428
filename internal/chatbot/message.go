package chatbot

// message is one incoming command. Payloads are either a bare string or an
// object with a "text" field and an optional "id" echoed in the reply.
type message struct {
	Text string
	ID   any
}

func decode(args []any) (message, bool) {
	if len(args) == 0 {
		return message{}, false
	}
	switch v := args[0].(type) {
	case string:
		return message{Text: v}, true
	case map[string]any:
		text, ok := v["text"].(string)
		if !ok {
			return message{}, false
		}
		return message{Text: text, ID: v["id"]}, true
	default:
		return message{}, false
	}
}

// reply returns the payload answering m: a bare string, or an object when
// the request carried an id.
func (m message) reply(text string) any {
	if m.ID == nil {
		return text
	}
	return map[string]any{"id": m.ID, "text": text}
}
