// Package portainer provides a minimal HTTP client for the Portainer
// control-plane API. It covers exactly the capabilities the provisioning
// workflow needs: reachability probing, first-time admin setup,
// authentication, endpoint management, and stack creation.
package portainer
