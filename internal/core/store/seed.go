package store

import (
	"time"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// Seed fixtures written on first access to each collection. Orders and
// messages carry timestamps relative to the moment of seeding so that a fresh
// installation looks recently used.

const day = 24 * time.Hour

func isoDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func seedServices() []domain.Service {
	return []domain.Service{
		{
			ID:          "1",
			Title:       "IMAGE VISION | FPV-дрон съемка для спортцентров",
			Description: "Съемка вашего фитнес-центра на FPV-дрон одним непрерывным кадром — современная виртуальная экскурсия для привлечения клиентов.",
			Price:       30000,
			Category:    "Спорт",
			Details: []string{
				"2 варианта съемки:",
				"Обзорная (30 000 ₽) — пролет по пустым залам, акцент на пространство и оборудование.",
				"Постановочная (от 65 000 ₽) — съемка с актерами/сотрудниками, показ атмосферы живого центра.",
			},
		},
		{
			ID:          "2",
			Title:       "Мини-квест \"Ящик видеографа\"",
			Description: "Посетитель сайта находит старинный деревянный ящик с надписью \"ATMA VISION\". Ящик принадлежал основателю студии - старому видеографу. Внутри лежат \"ключи\" к пониманию искусства видеосъемки.",
			Price:       65000,
			Category:    "Event",
			Details: []string{
				"Сюжет: Ящик принадлежал основателю студии - старому видеографу. Внутри лежат \"ключи\" к пониманию искусства видеосъемки.",
				"Этапы квеста:",
				"1. Первая находка: Старая кассета VHS",
				"• Нужно \"проявить\" её (навести курсор)",
			},
		},
		{
			ID:          "3",
			Title:       "ВИДЕОСЪЕМКА OT ATMA VISION",
			Description: "Запечатлеем самые яркие моменты ваших приключений, праздников и важных событий!",
			Price:       45000,
			Category:    "Праздник",
		},
		{
			ID:          "4",
			Title:       "Корпоративный имиджевый фильм",
			Description: "Презентационный фильм о вашей компании. Покажем масштаб, ценности и команду. Идеально для сайта и переговоров.",
			Price:       150000,
			Category:    "Бизнес",
			Details: []string{
				"Разработка сценария и раскадровка",
				"Съемка 2-3 смены (офис, производство)",
				"Интервью с руководителями и сотрудниками",
				"Аэросъемка объектов",
				"Профессиональная озвучка и инфографика",
			},
		},
		{
			ID:          "5",
			Title:       "Свадебная видеосъемка \"Премиум\"",
			Description: "Многокамерная съемка вашего главного дня. Создаем кинематографичный фильм о вашей любви.",
			Price:       80000,
			Category:    "Свадьба",
			Details: []string{
				"Работа двух операторов (10 часов)",
				"Аэросъемка прогулки",
				"SDE (монтаж ролика в день свадьбы для показа на банкете)",
				"Свадебный фильм (20-40 мин) и клип (3-5 мин)",
				"Цветокоррекция уровня кино",
			},
		},
		{
			ID:          "6",
			Title:       "Пакет Reels/Shorts \"Быстрый старт\"",
			Description: "Съемка профессионального контента для социальных сетей на месяц вперед. Забудьте о проблеме \"что выложить\".",
			Price:       25000,
			Category:    "SMM",
			Details: []string{
				"Разработка контент-плана (10 роликов)",
				"Студийная или выездная съемка (до 3 часов)",
				"Динамичный монтаж, трендовая музыка, титры",
				"Адаптация под все вертикальные форматы",
			},
		},
		{
			ID:          "7",
			Title:       "Видеообзор недвижимости",
			Description: "Продающий ролик для риелторов и застройщиков. Повышает конверсию объявлений в 2 раза.",
			Price:       15000,
			Category:    "Недвижимость",
			Details: []string{
				"Динамичный монтаж (до 2 мин)",
				"Широкоугольная съемка интерьера",
				"Акцент на преимуществах планировки и вида",
				"Текстовые плашки с характеристиками",
				"Готовность через 48 часов",
			},
		},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "admin-1", Name: "Главный Менеджер", Email: "admin@atma.vision", Password: "admin", Role: domain.RoleManager},
		{ID: "operator-1", Name: "Иван Оператор", Email: "operator@atma.vision", Password: "operator", Role: domain.RoleOperator},
		{ID: "operator-2", Name: "Елена Камера", Email: "elena@atma.vision", Password: "operator", Role: domain.RoleOperator},
		{ID: "client-1", Name: "Анна Клиент", Email: "client@atma.vision", Password: "client", Role: domain.RoleClient},
		{ID: "client-2", Name: "Сергей Петров", Email: "sergey@example.com", Password: "client", Role: domain.RoleClient},
		{ID: "client-3", Name: "Мария Смирнова", Email: "maria@example.com", Password: "client", Role: domain.RoleClient},
		{ID: "client-4", Name: "ООО \"ТехноСтрой\"", Email: "info@technostroy.ru", Password: "client", Role: domain.RoleClient},
	}
}

func seedOrders(now time.Time) []domain.Order {
	return []domain.Order{
		{
			ID:            "ord-1001",
			ClientID:      "client-1",
			ServiceID:     "3",
			ServiceTitle:  "ВИДЕОСЪЕМКА OT ATMA VISION",
			ClientName:    "Анна Клиент",
			ClientContact: "client@atma.vision",
			Date:          isoDate(now.Add(-5 * day)),
			Status:        domain.StatusCompleted,
			Amount:        45000,
			CreatedAt:     millis(now.Add(-5 * day)),
			OperatorID:    "operator-1",
			OperatorName:  "Иван Оператор",
		},
		{
			ID:            "ord-1002",
			ClientID:      "client-1",
			ServiceID:     "1",
			ServiceTitle:  "IMAGE VISION | FPV-дрон съемка для спортцентров",
			ClientName:    "Анна Клиент",
			ClientContact: "client@atma.vision",
			Date:          isoDate(now.Add(-2 * day)),
			Status:        domain.StatusAccepted,
			Amount:        30000,
			CreatedAt:     millis(now.Add(-2 * day)),
			OperatorID:    "operator-2",
			OperatorName:  "Елена Камера",
		},
		{
			ID:            "ord-1003",
			ClientID:      "client-2",
			ServiceID:     "5",
			ServiceTitle:  "Свадебная видеосъемка \"Премиум\"",
			ClientName:    "Сергей Петров",
			ClientContact: "sergey@example.com",
			Date:          isoDate(now.Add(-10 * day)),
			Status:        domain.StatusCompleted,
			Amount:        80000,
			CreatedAt:     millis(now.Add(-10 * day)),
			OperatorID:    "operator-1",
			OperatorName:  "Иван Оператор",
		},
		{
			ID:            "ord-1004",
			ClientID:      "client-2",
			ServiceID:     "7",
			ServiceTitle:  "Видеообзор недвижимости",
			ClientName:    "Сергей Петров",
			ClientContact: "sergey@example.com",
			Date:          isoDate(now),
			Status:        domain.StatusAccepted,
			Amount:        15000,
			CreatedAt:     millis(now),
			OperatorID:    "operator-1",
			OperatorName:  "Иван Оператор",
		},
		{
			ID:            "ord-1005",
			ClientID:      "client-4",
			ServiceID:     "4",
			ServiceTitle:  "Корпоративный имиджевый фильм",
			ClientName:    "ООО \"ТехноСтрой\"",
			ClientContact: "+7 (900) 123-45-67",
			Date:          isoDate(now.Add(-20 * day)),
			Status:        domain.StatusCompleted,
			Amount:        150000,
			CreatedAt:     millis(now.Add(-20 * day)),
		},
		{
			ID:            "ord-1006",
			ClientID:      "client-4",
			ServiceID:     "6",
			ServiceTitle:  "Пакет Reels/Shorts \"Быстрый старт\"",
			ClientName:    "ООО \"ТехноСтрой\"",
			ClientContact: "marketing@technostroy.ru",
			Date:          isoDate(now.Add(-time.Hour)),
			Status:        domain.StatusPending,
			Amount:        25000,
			CreatedAt:     millis(now.Add(-time.Hour)),
		},
		{
			ID:            "ord-1007",
			ClientID:      "client-3",
			ServiceID:     "2",
			ServiceTitle:  "Мини-квест \"Ящик видеографа\"",
			ClientName:    "Мария Смирнова",
			ClientContact: "maria@example.com",
			Date:          isoDate(now.Add(-30 * day)),
			Status:        domain.StatusCancelled,
			Amount:        65000,
			CreatedAt:     millis(now.Add(-30 * day)),
		},
	}
}

func seedMessages(now time.Time) []domain.Message {
	thread1002 := now.Add(-2 * day)
	return []domain.Message{
		{
			ID:         "msg-1",
			OrderID:    "ord-1002",
			SenderID:   "client-1",
			SenderName: "Анна Клиент",
			Text:       "Добрый день! Подскажите, нужна ли какая-то подготовка зала перед съемкой?",
			Timestamp:  millis(thread1002.Add(1 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-2",
			OrderID:    "ord-1002",
			SenderID:   "operator-2",
			SenderName: "Елена Камера",
			Text:       "Здравствуйте! Да, желательно убрать лишние предметы с пола и включить всё освещение. Также, если есть фирменная форма у тренеров, лучше, чтобы они были в ней.",
			Timestamp:  millis(thread1002.Add(2 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-3",
			OrderID:    "ord-1002",
			SenderID:   "client-1",
			SenderName: "Анна Клиент",
			Text:       "Поняла, спасибо! А сколько примерно займет монтаж? Нам бы хотелось получить видео к следующей пятнице.",
			Timestamp:  millis(thread1002.Add(3 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-4",
			OrderID:    "ord-1002",
			SenderID:   "operator-2",
			SenderName: "Елена Камера",
			Text:       "Да, конечно. Мы успеем сделать черновой монтаж уже к среде, чтобы у вас было время на правки. К пятнице финал будет готов!",
			Timestamp:  millis(thread1002.Add(4 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-10",
			OrderID:    "ord-1004",
			SenderID:   "client-2",
			SenderName: "Сергей Петров",
			Text:       "Здравствуйте! Оформил заявку на обзор квартиры. Подскажите, когда сможете подъехать?",
			Timestamp:  millis(now.Add(-5 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-11",
			OrderID:    "ord-1004",
			SenderID:   "operator-1",
			SenderName: "Иван Оператор",
			Text:       "Добрый день, Сергей! Я назначен на ваш заказ. Могу завтра, ориентировочно в 12:00. Вам удобно?",
			Timestamp:  millis(now.Add(-4 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-12",
			OrderID:    "ord-1004",
			SenderID:   "client-2",
			SenderName: "Сергей Петров",
			Text:       "Да, в 12 отлично. Адрес: ул. Пушкина, д. 10, кв. 55. Код домофона 55В.",
			Timestamp:  millis(now.Add(-3*time.Hour - 30*time.Minute)),
			IsRead:     true,
		},
		{
			ID:         "msg-13",
			OrderID:    "ord-1004",
			SenderID:   "operator-1",
			SenderName: "Иван Оператор",
			Text:       "Принято. Пожалуйста, подготовьте помещение: уберите личные вещи и обеспечьте максимальное освещение.",
			Timestamp:  millis(now.Add(-3 * time.Hour)),
			IsRead:     true,
		},
		{
			ID:         "msg-14",
			OrderID:    "ord-1004",
			SenderID:   "client-2",
			SenderName: "Сергей Петров",
			Text:       "Хорошо, всё сделаем. До встречи!",
			Timestamp:  millis(now.Add(-2*time.Hour - 48*time.Minute)),
			IsRead:     true,
		},
	}
}
