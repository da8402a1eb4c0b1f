package transport

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// OpKind identifies a Port primitive.
type OpKind int

const (
	OpSelect OpKind = iota
	OpDeselect
	OpCommand
	OpData
	OpTransmit
)

func (k OpKind) String() string {
	switch k {
	case OpSelect:
		return "select"
	case OpDeselect:
		return "deselect"
	case OpCommand:
		return "command"
	case OpData:
		return "data"
	case OpTransmit:
		return "transmit"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded Port call. Data is only set for OpTransmit and is a copy
// of what was sent.
type Op struct {
	Kind OpKind
	Data []byte
}

// Command is a controller command decoded from a recording: the opcode sent in
// command mode and every byte transmitted in data mode until the next command.
type Command struct {
	Opcode byte
	Params []byte
}

// Recorder is a Port that talks to no hardware. It keeps every call so a dry
// run can be inspected, and logs each one at debug level.
type Recorder struct {
	// Err, when set, is returned by every Transmit.
	Err error

	Ops []Op

	log *zap.Logger
}

// NewRecorder returns an empty Recorder. log may be nil.
func NewRecorder(log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{log: log}
}

func (r *Recorder) Select() error {
	r.record(Op{Kind: OpSelect})
	return nil
}

func (r *Recorder) Deselect() error {
	r.record(Op{Kind: OpDeselect})
	return nil
}

func (r *Recorder) CommandMode() error {
	r.record(Op{Kind: OpCommand})
	return nil
}

func (r *Recorder) DataMode() error {
	r.record(Op{Kind: OpData})
	return nil
}

func (r *Recorder) Transmit(p []byte) error {
	if r.Err != nil {
		return r.Err
	}
	r.record(Op{Kind: OpTransmit, Data: append([]byte(nil), p...)})
	return nil
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	return len(lo.Filter(r.Ops, func(op Op, _ int) bool { return op.Kind == k }))
}

// Transmitted returns every byte sent while in data mode, in order.
func (r *Recorder) Transmitted() []byte {
	var out []byte
	data := false
	for _, op := range r.Ops {
		switch op.Kind {
		case OpCommand:
			data = false
		case OpData:
			data = true
		case OpTransmit:
			if data {
				out = append(out, op.Data...)
			}
		}
	}
	return out
}

// Commands decodes the recording into controller commands.
func (r *Recorder) Commands() []Command {
	var cmds []Command
	data := false
	for _, op := range r.Ops {
		switch op.Kind {
		case OpCommand:
			data = false
		case OpData:
			data = true
		case OpTransmit:
			if !data {
				for _, b := range op.Data {
					cmds = append(cmds, Command{Opcode: b})
				}
				continue
			}
			if len(cmds) == 0 {
				continue
			}
			last := &cmds[len(cmds)-1]
			last.Params = append(last.Params, op.Data...)
		}
	}
	return cmds
}

func (r *Recorder) record(op Op) {
	r.Ops = append(r.Ops, op)
	if ce := r.log.Check(zap.DebugLevel, op.Kind.String()); ce != nil {
		ce.Write(zap.Int("len", len(op.Data)))
	}
}
