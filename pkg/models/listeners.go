package models

// ConnectionListener receives callbacks as the connection lifecycle advances
type ConnectionListener interface {
	OnAdvertising()
	OnConnected(ConnectionHandle)
	OnDisconnected()
}
