package utils

import "testing"

func TestGetEnvAsInt(t *testing.T) {
  cases := []struct {
    name string
    set  string
    want int
  }{
    {name: "unset", want: 10},
    {name: "valid", set: "30", want: 30},
    {name: "garbage", set: "ten", want: 10},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if tc.set != "" {
        t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", tc.set)
      }
      if got := GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10, nil); got != tc.want {
        t.Fatalf("GetEnvAsInt = %d, want %d", got, tc.want)
      }
    })
  }
}

func TestGetEnvAsBool(t *testing.T) {
  cases := []struct {
    name string
    set  string
    want bool
  }{
    {name: "unset", want: true},
    {name: "false", set: "false", want: false},
    {name: "garbage", set: "nope", want: true},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if tc.set != "" {
        t.Setenv("POSTGRES_AUTO_MIGRATE", tc.set)
      }
      if got := GetEnvAsBool("POSTGRES_AUTO_MIGRATE", true, nil); got != tc.want {
        t.Fatalf("GetEnvAsBool = %v, want %v", got, tc.want)
      }
    })
  }
}
