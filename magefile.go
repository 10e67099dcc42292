//go:build mage
// +build mage

package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

type Remote mg.Namespace

var (
	buildDir = "bin/linux"
	binName  = "uptimed"
)

// Builds the daemon for a linux/amd64 target host.
func (Remote) Build() error {
	fmt.Println("Building...")
	env := map[string]string{
		"GOOS":   "linux",
		"GOARCH": "amd64",
	}
	return sh.RunWithV(env, "go", "build", "-o", filepath.Join(buildDir, binName), "./cmd/uptimed")
}

// Builds and copies the daemon to the target host over SSH.
// Assumes you have SSH keys set up for the host.
func (Remote) Deploy(host string, username string) error {
	mg.Deps(Remote.Build)
	connStr := fmt.Sprintf("%s@%s", username, host)
	deployPath := "/home/" + username + "/uptimed"
	fmt.Printf("Copying binary via SCP to %s:%s\n", connStr, deployPath)

	err := sh.Run("ssh", connStr, "mkdir -p", deployPath)
	if err != nil {
		return fmt.Errorf("failed to create deploy path on host: %w", err)
	}
	err = sh.Run("scp", filepath.Join(buildDir, binName), fmt.Sprintf("%s:%s/%s", connStr, deployPath, binName))
	if err != nil {
		return fmt.Errorf("failed to deploy to host: %w", err)
	}
	return nil
}

// Deploys and runs the daemon on the target host with the given
// arguments, streaming its output. Blocks until the daemon exits.
func (Remote) Run(host string, username string, args string) error {
	mg.Deps(mg.F(Remote.Deploy, host, username))
	client, err := sshClient(username, host)
	if err != nil {
		return fmt.Errorf("failed to create SSH client: %w", err)
	}
	defer client.Close()
	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	session.Stdout = os.Stdout
	session.Stderr = os.Stderr
	cmd := fmt.Sprintf("~/uptimed/%s %s", binName, args)
	fmt.Println("Running:", cmd)
	if err := session.Run(cmd); err != nil {
		return fmt.Errorf("daemon exited: %w", err)
	}
	return nil
}

// Cleans up the build directory.
func (Remote) Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(filepath.Join(buildDir, binName))
}

func sshClient(user, host string) (*ssh.Client, error) {
	var authMethods []ssh.AuthMethod

	// Try to connect to SSH agent
	conn, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
	if err == nil {
		agent := agent.NewClient(conn)
		signers, err := agent.Signers()
		if err == nil {
			authMethods = append(authMethods, ssh.PublicKeys(signers...))
		}
	}

	if len(authMethods) == 0 {
		fmt.Println("No SSH keys found...")
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // Dev only.
	}
	addr := host + ":22"
	fmt.Println("Dialing SSH client to", addr)
	return ssh.Dial("tcp", addr, config)
}
