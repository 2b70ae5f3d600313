package state

import "github.com/google/uuid"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type Notification struct {
	ID       string
	Severity Severity
	Message  string
}

type UIState struct {
	Theme            string
	SidebarCollapsed bool
	MobileMenuOpen   bool
	Notifications    []Notification
}

func (s *Store) ToggleTheme() {
	s.update(func() {
		if s.ui.Theme == ThemeLight {
			s.ui.Theme = ThemeDark
		} else {
			s.ui.Theme = ThemeLight
		}
	})
}

func (s *Store) SetTheme(theme string) {
	s.update(func() { s.ui.Theme = theme })
}

func (s *Store) ToggleSidebar() {
	s.update(func() { s.ui.SidebarCollapsed = !s.ui.SidebarCollapsed })
}

func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.update(func() { s.ui.SidebarCollapsed = collapsed })
}

func (s *Store) ToggleMobileMenu() {
	s.update(func() { s.ui.MobileMenuOpen = !s.ui.MobileMenuOpen })
}

func (s *Store) PushNotification(severity Severity, message string) string {
	var id string
	s.update(func() { id = s.pushNotification(severity, message) })
	return id
}

func (s *Store) RemoveNotification(id string) {
	s.update(func() {
		// Rebuild rather than filter in place; earlier UI snapshots share
		// the backing array.
		out := make([]Notification, 0, len(s.ui.Notifications))
		for _, n := range s.ui.Notifications {
			if n.ID != id {
				out = append(out, n)
			}
		}
		s.ui.Notifications = out
	})
}

func (s *Store) ClearNotifications() {
	s.update(func() { s.ui.Notifications = nil })
}

// pushNotification appends to the queue; callers must hold the store lock.
func (s *Store) pushNotification(severity Severity, message string) string {
	n := Notification{
		ID:       uuid.NewString(),
		Severity: severity,
		Message:  message,
	}
	s.ui.Notifications = append(s.ui.Notifications, n)
	return n.ID
}
