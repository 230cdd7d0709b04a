package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/itchan-dev/forum/shared/domain"
)

type threadItem struct {
	thread domain.Thread
}

func (i threadItem) Title() string {
	if i.thread.Icon == "" {
		return i.thread.Title
	}
	return i.thread.Icon + " " + i.thread.Title
}

func (i threadItem) Description() string {
	if i.thread.User == "" {
		return "#" + strconv.FormatInt(i.thread.Id, 10)
	}
	return "#" + strconv.FormatInt(i.thread.Id, 10) + " by " + i.thread.User
}

func (i threadItem) FilterValue() string { return i.thread.Title }

func threadItems(threads []domain.Thread) []list.Item {
	items := make([]list.Item, 0, len(threads))
	for _, th := range threads {
		items = append(items, threadItem{thread: th})
	}
	return items
}

func selectThreadById(l *list.Model, id domain.ThreadId) {
	for i, it := range l.Items() {
		if ti, ok := it.(threadItem); ok && ti.thread.Id == id {
			l.Select(i)
			return
		}
	}
}
