//go:build !windows

package env

func expand(s string) (string, error) {
	return expandDollar(expandPercent(s, lookupEnv), lookupEnv), nil
}
