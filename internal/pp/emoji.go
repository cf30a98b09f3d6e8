package pp

// Emoji is the type of emoji strings.
type Emoji string

// All the emojis used in this program.
const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points
	EmojiMute   Emoji = "🔇" // quiet mode

	EmojiConfig Emoji = "🔧" // showing configuration

	EmojiZone       Emoji = "🌐" // processing a DNS zone
	EmojiCreateZone Emoji = "🚧" // creating a DNS zone

	EmojiAddRecord    Emoji = "🐣" // creating record sets
	EmojiDelRecord    Emoji = "💀" // deleting record sets
	EmojiUpdateRecord Emoji = "📡" // updating record sets
	EmojiSkipRecord   Emoji = "⏭️" // skipping record sets
	EmojiAlreadyDone  Emoji = "🤷" // record sets already in sync

	EmojiSummary Emoji = "📊" // the final statistics
	EmojiSignal  Emoji = "🚨" // catching signals
	EmojiNow     Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm   Emoji = "⏰" // an event that is scheduled to happen, but not immediately
	EmojiBye     Emoji = "👋" // bye!

	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiGood        Emoji = "👍" // everything looks good
)
