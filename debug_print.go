package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}

	return append(msgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DebugMsgsString() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	total := len(dm.PersistentDebugMsgs) + len(dm.DebugMsgs)
	msgCounter := 0

	write := func(msg DebugMsg) {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		msgCounter++
		if msgCounter != total {
			dm.builder.WriteString("\n")
		}
	}

	for _, msg := range dm.PersistentDebugMsgs {
		write(msg)
	}
	for _, msg := range dm.DebugMsgs {
		write(msg)
	}

	return dm.builder.String()
}

func DrawDebugMsgs(dst *eb.Image) {
	text := DebugMsgsString()
	if text == "" {
		return
	}

	// debug font is 6x16
	const charW, lineH = 6, 16
	const margin = 5

	lines := strings.Split(text, "\n")
	longest := 0
	for _, line := range lines {
		longest = max(longest, len(line))
	}

	boxW := f64(longest*charW + margin*2)
	boxH := f64(len(lines)*lineH + margin*2)

	DrawFilledRect(dst, 0, 0, boxW, boxH, color.NRGBA{0, 0, 0, 200}, false)
	ebu.DebugPrintAt(dst, text, margin, margin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
