package rbac

// модель: роль получает доступ к шаблону роута и HTTP-методу, без наследования ролей
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

const policyText = `
p, courier, /deliveries/available, GET
p, admin, /deliveries/available, GET
p, courier, /deliveries/me, GET
p, courier, /deliveries/me/metrics, GET
p, courier, /deliveries/me/withdraw-requests, POST
p, courier, /deliveries/me/withdraw-requests, GET
p, courier, /deliveries/{id}/accept, PUT
p, courier, /deliveries/{id}/status, PUT
p, courier, /deliveries/{id}, GET
p, admin, /deliveries/{id}, GET
p, admin, /deliveries/admin/withdraw-requests, GET
p, admin, /deliveries/admin/withdraw-requests/{id}, PUT
p, admin, /deliveries/admin/rules, GET
p, admin, /deliveries/admin/rules/{key}, PUT
p, admin, /deliveries/admin/rules/{key}/history, GET
`
