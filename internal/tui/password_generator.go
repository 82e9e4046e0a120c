package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/models"
)

type generatorModel struct {
	inputs      []textinput.Model
	focus       int
	opts        generator.Options
	result      string
	strength    models.StrengthCategory
	hasStrength bool
	status      string
}

func newGeneratorModel() generatorModel {
	opts := generator.DefaultOptions()

	length := newInput("length", false)
	length.CharLimit = 3
	length.SetValue(strconv.Itoa(opts.Length))
	length.Focus()

	return generatorModel{
		inputs: []textinput.Model{length, newInput("characters to avoid", false)},
		opts:   opts,
	}
}

// options reads the form into generator options. An unparsable length is
// reported as 0 so that validation rejects it.
func (m generatorModel) options() generator.Options {
	opts := m.opts
	opts.Length, _ = strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	opts.Forbidden = m.inputs[1].Value()
	return opts
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m generatorModel) View() string {
	var b strings.Builder

	b.WriteString("Length: [" + m.inputs[0].View() + "]\n")
	b.WriteString("Avoid:  [" + m.inputs[1].View() + "]\n\n")
	b.WriteString(fmt.Sprintf("%s uppercase (ctrl+u)\n", checkbox(m.opts.Upper)))
	b.WriteString(fmt.Sprintf("%s digits    (ctrl+d)\n", checkbox(m.opts.Digits)))
	b.WriteString(fmt.Sprintf("%s special   (ctrl+s)\n", checkbox(m.opts.Special)))

	if m.result != "" {
		b.WriteString("\nPassword: " + m.result)
		if m.hasStrength {
			b.WriteString("  " + strengthBadge(m.strength))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("PASSWORD GENERATOR", strings.TrimRight(b.String(), "\n"),
		"enter: generate │ tab: next field │ ctrl+y: copy │ esc: back")
}
