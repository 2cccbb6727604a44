package validator

// Config holds the fallbacks used when a field does not carry the matching constraint.
// Field names map to environment variables through caarlos0/env tags.
type Config struct {
	MoneyPrecision        int    `env:"MONEY_PRECISION" envDefault:"2"`
	PassphraseAlgorithm   string `env:"PASSPHRASE_ALGORITHM" envDefault:"shannon"`
	PasswordPolicy        string `env:"PASSWORD_POLICY" envDefault:"unrestricted"`
	PasswordSequenceRules bool   `env:"PASSWORD_SEQUENCE_RULES" envDefault:"false"`
	PhoneMinDigits        int    `env:"PHONE_MIN_DIGITS" envDefault:"3"`
	PhoneMaxDigits        int    `env:"PHONE_MAX_DIGITS" envDefault:"15"`
	NameMaxLength         int    `env:"NAME_MAX_LENGTH" envDefault:"255"`
	URLMaxLength          int    `env:"URL_MAX_LENGTH" envDefault:"2048"`
}

// DefaultConfig returns the same values as the envDefault tags.
func DefaultConfig() Config {
	return Config{
		MoneyPrecision:      2,
		PassphraseAlgorithm: AlgorithmShannon,
		PasswordPolicy:      "unrestricted",
		PhoneMinDigits:      3,
		PhoneMaxDigits:      15,
		NameMaxLength:       255,
		URLMaxLength:        2048,
	}
}
