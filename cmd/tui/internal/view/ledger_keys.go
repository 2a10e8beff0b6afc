package view

import "github.com/charmbracelet/bubbles/key"

type ledgerKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Open     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Drag     key.Binding
	Today    key.Binding
	Latest   key.Binding
	View     key.Binding
	Theme    key.Binding
	Back     key.Binding
}

var ledgerKeys = ledgerKeyMap{
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "이전")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "다음")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "위")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "아래")),
	PrevPage: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "이전 달")),
	NextPage: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "다음 달")),
	NextItem: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "내역 선택")),
	PrevItem: key.NewBinding(key.WithKeys("shift+tab")),
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "열기")),
	Add:      key.NewBinding(key.WithKeys("+", "a"), key.WithHelp("+", "추가")),
	Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "삭제")),
	Drag:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "옮기기")),
	Today:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "오늘")),
	Latest:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "최근 내역")),
	View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "월/일 전환")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "테마")),
	Back:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "메뉴")),
}

func (k ledgerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextItem, k.Add, k.Delete, k.Drag, k.View, k.Today, k.Latest, k.Theme, k.Back}
}

func (k ledgerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PrevPage, k.NextPage},
		k.ShortHelp(),
	}
}

// editorKeyMap is active while an entry card has focus.
type editorKeyMap struct {
	Switch   key.Binding
	Save     key.Binding
	Close    key.Binding
	Type     key.Binding
	Calendar key.Binding
	Delete   key.Binding
}

var editorKeys = editorKeyMap{
	Switch:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "항목 이동")),
	Save:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "저장")),
	Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "닫기")),
	Type:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "수입/지출")),
	Calendar: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "날짜")),
	Delete:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "삭제")),
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Close, k.Switch, k.Type, k.Calendar, k.Delete}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dragKeyMap is active while an entry is lifted with the keyboard.
type dragKeyMap struct {
	Move   key.Binding
	Drop   key.Binding
	Cancel key.Binding
}

var dragKeys = dragKeyMap{
	Move:   key.NewBinding(key.WithKeys("left", "right", "up", "down", "h", "j", "k", "l"), key.WithHelp("←↑↓→", "날짜 선택")),
	Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "놓기")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "취소")),
}

func (k dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Drop, k.Cancel}
}

func (k dragKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
