package services

// Маршруты приложения. Защищенные страницы доступны только с живой сессией
const (
	RouteIndex         = "/"
	RouteLogin         = "/login"
	RouteSignup        = "/signup"
	RouteHome          = "/home"
	RouteProfile       = "/profile"
	RouteMessages      = "/messages"
	RouteNotifications = "/notifications"
	RouteSearch        = "/search"
	RouteSettings      = "/settings"
)

var protectedRoutes = map[string]bool{
	RouteHome:          true,
	RouteProfile:       true,
	RouteMessages:      true,
	RouteNotifications: true,
	RouteSearch:        true,
	RouteSettings:      true,
}

var publicRoutes = map[string]bool{
	RouteIndex:  true,
	RouteLogin:  true,
	RouteSignup: true,
}

// Navigation - результат перехода: куда попали и что рисовать
type Navigation struct {
	Path       string
	Redirected bool
	NotFound   bool
	WithShell  bool
}

// NavItem - пункт постоянной навигации с бейджем непрочитанного
type NavItem struct {
	Label  string
	Path   string
	Active bool
	Badge  int
}

// Router решает, достижима ли запрошенная страница при текущей сессии,
// и собирает навигационную обвязку для защищенных страниц
type Router struct {
	session       *SessionStore
	chat          *ChatView
	notifications *NotificationView
	current       string
}

func NewRouter(session *SessionStore) *Router {
	return &Router{session: session, current: RouteIndex}
}

// AttachBadges подключает источники счетчиков для бейджей навигации
func (r *Router) AttachBadges(chat *ChatView, notifications *NotificationView) {
	r.chat = chat
	r.notifications = notifications
}

// Navigate выполняет переход. Запрос защищенного маршрута без сессии
// уводит на /login, исходный путь при этом не сохраняется
func (r *Router) Navigate(path string) Navigation {
	if protectedRoutes[path] {
		if !r.session.IsAuthenticated() {
			r.current = RouteLogin
			return Navigation{Path: RouteLogin, Redirected: true}
		}
		r.current = path
		return Navigation{Path: path, WithShell: true}
	}
	if publicRoutes[path] {
		r.current = path
		return Navigation{Path: path}
	}
	return Navigation{Path: path, NotFound: true}
}

func (r *Router) Current() string {
	return r.current
}

// NavItems собирает пункты навигации для текущего маршрута
func (r *Router) NavItems() []NavItem {
	messagesBadge := 0
	if r.chat != nil {
		messagesBadge = r.chat.UnreadTotal()
	}
	notificationsBadge := 0
	if r.notifications != nil {
		notificationsBadge = r.notifications.UnreadCount()
	}

	items := []NavItem{
		{Label: "Home", Path: RouteHome},
		{Label: "Profile", Path: RouteProfile},
		{Label: "Messages", Path: RouteMessages, Badge: messagesBadge},
		{Label: "Notifications", Path: RouteNotifications, Badge: notificationsBadge},
		{Label: "Search", Path: RouteSearch},
		{Label: "Settings", Path: RouteSettings},
	}
	for i := range items {
		items[i].Active = items[i].Path == r.current
	}
	return items
}
