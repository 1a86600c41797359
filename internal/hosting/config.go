package hosting

type Config struct {
	Token string
}
