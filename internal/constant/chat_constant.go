package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// AutoNameThreshold is the stored message count at which a room without
	// a name gets one generated.
	AutoNameThreshold = 3

	// RoomNamingContextLimit caps how many of the room's earliest messages
	// feed the naming prompt.
	RoomNamingContextLimit = 6

	// ChatSystemPromptV1 is the assistant persona: a concise, evidence-based
	// Persian medical study companion.
	ChatSystemPromptV1 = `شما مد-ویس بادی هستید، یک دستیار مختصر و مبتنی بر شواهد که به کاربر در مطالعه پزشکی کمک می‌کند. اگر مطمئن نیستید، با وضوح بیان کنید.`

	// ChatLastResponseContextV1 is appended to the system prompt when the
	// caller supplies the previous reply, to keep turns coherent.
	ChatLastResponseContextV1 = `

پاسخ قبلی شما: %s

لطفاً در پاسخ‌های بعدی به این پاسخ قبلی اشاره کنید و اطلاعات تکمیلی ارائه دهید.`

	RoomNamingSystemPromptV1 = `شما یک دستیار هوشمند هستید که نام‌های مناسب برای گفتگوهای پزشکی انتخاب می‌کند.`

	RoomNamingUserPromptV1 = `
بر اساس این گفتگو، یک نام کوتاه و مناسب (حداکثر 5 کلمه) برای این گفتگو انتخاب کنید:

%s

نام باید:
- کوتاه و مختصر باشد (حداکثر 5 کلمه)
- موضوع اصلی گفتگو را نشان دهد
- به فارسی باشد
- مناسب برای یک گفتگوی پزشکی باشد

فقط نام را برگردانید، بدون توضیح اضافی.`

	// Speaker labels used when summarizing a conversation for naming.
	RoomNamingUserLabel      = "کاربر"
	RoomNamingAssistantLabel = "دستیار"

	// TranscribePrimingPromptV1 biases recognition toward medical study
	// vocabulary.
	TranscribePrimingPromptV1 = `من سوالات درس پزشکی را می پرسم .`

	TranscribeLanguage = "fa"
)
