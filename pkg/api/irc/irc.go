package irc

import (
	"crypto/tls"
	"fmt"
	irce "github.com/thoj/go-ircevent"
	"regexp"
	"strings"
	"time"

	"sentinel/pkg/config"
)

type IRC interface {
	Connect(cfg *config.Config, onReady func()) error
	Listen(ech chan *Event)
	Join(channel string)
	Part(channel string)
	SendMessage(target, message string)
	SendMessages(target string, messages []string)
	SendNotice(nick, message string)
	Mode(channel string, modes ...string)
	Voice(channel, nick string)
	Devoice(channel, nick string)
	RequestOp(channel, nick string)
	Disconnect()
}

const maxMessageLength = 400

func NewIRC() IRC {
	return &service{}
}

type service struct {
	cfg  *config.Config
	conn *irce.Connection
	ech  chan *Event
}

func (s *service) Connect(cfg *config.Config, onReady func()) error {
	s.cfg = cfg

	s.conn = irce.IRC(cfg.IRC.Nick, cfg.IRC.Username)
	s.conn.RealName = cfg.IRC.RealName
	s.conn.Debug = false
	s.conn.VerboseCallbackHandler = false

	if cfg.IRC.TLS {
		s.conn.UseTLS = cfg.IRC.TLS
		s.conn.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	if len(cfg.IRC.NickServ.Password) > 0 {
		s.respondOnce(CodeNotice, func(event *irce.Event) bool {
			if strings.Contains(event.Message(), cfg.IRC.NickServ.IdentifyPattern) {
				s.conn.Privmsgf(cfg.IRC.NickServ.Recipient, cfg.IRC.NickServ.IdentifyCommand, cfg.IRC.NickServ.Password)
				return true
			}
			return false
		})
	}

	s.respondOnce(CodeWelcome, func(event *irce.Event) bool {
		for _, channel := range cfg.IRC.Channels {
			s.conn.Join(channel)
		}
		if onReady != nil {
			onReady()
		}
		return true
	})

	err := s.conn.Connect(fmt.Sprintf("%s:%d", cfg.IRC.Server, cfg.IRC.Port))
	if err != nil {
		return err
	}

	return nil
}

func (s *service) respondOnce(code string, callback func(event *irce.Event) bool) {
	var id int
	id = s.conn.AddCallback(code, func(event *irce.Event) {
		if callback(event) {
			s.conn.RemoveCallback(code, id)
		}
	})
}

func (s *service) Listen(ech chan *Event) {
	s.ech = ech

	s.conn.AddCallback("*", func(event *irce.Event) {
		if s.ech != nil {
			s.ech <- createEvent(event)
		}
	})

	s.conn.Loop()
}

func (s *service) Join(channel string) {
	s.conn.Join(channel)
}

func (s *service) Part(channel string) {
	s.conn.Part(channel)
}

var multipleSpacesRegex = regexp.MustCompile(`\s{2,}`)

func (s *service) SendMessage(target, message string) {
	message = strings.ReplaceAll(message, "\r", "")
	message = strings.ReplaceAll(message, "\n", " ")
	message = strings.ReplaceAll(message, "\t", " ")
	message = strings.TrimSpace(message)
	message = multipleSpacesRegex.ReplaceAllString(message, " ")

	if len(message) < maxMessageLength {
		s.conn.Privmsg(target, message)
		return
	}

	words := strings.Split(message, " ")
	messages := make([]string, 0)
	current := ""

	for _, word := range words {
		if len(current)+len(word) > maxMessageLength {
			messages = append(messages, current)
			current = ""
		}
		if len(current) > 0 {
			current += " "
		}
		current += word
	}

	if len(current) > 0 {
		messages = append(messages, current)
	}

	for _, m := range messages {
		s.conn.Privmsg(target, m)
	}
}

func (s *service) SendMessages(target string, messages []string) {
	go func() {
		for _, message := range messages {
			s.SendMessage(target, message)
			time.Sleep(50 * time.Millisecond)
		}
	}()
}

func (s *service) SendNotice(nick, message string) {
	s.conn.Notice(nick, message)
}

func (s *service) Mode(channel string, modes ...string) {
	s.conn.Mode(channel, modes...)
}

func (s *service) Voice(channel, nick string) {
	s.conn.Mode(channel, "+v", nick)
}

func (s *service) Devoice(channel, nick string) {
	s.conn.Mode(channel, "-v", nick)
}

func (s *service) RequestOp(channel, nick string) {
	s.conn.Privmsgf(s.cfg.IRC.ChanServ.Recipient, s.cfg.IRC.ChanServ.OpCommand, channel, nick)
}

func (s *service) Disconnect() {
	s.conn.ClearCallback("*")
	s.conn.Disconnect()
}
