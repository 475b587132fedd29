package sqlinline

const QCountAdmins = `--sql 3f6f3a1e-8a6f-4f1d-9f2a-6f3f9f1c2a4d
select count(*) from admins;
`

const QInsertAdmin = `--sql b41c8a72-55e1-4f0b-8a6a-2d1c9e7f3b05
insert into admins(id, email, password_hash, name, created_at)
values ($1::text, $2::text, $3::text, $4::text, now())
returning created_at;
`

const QSelectAdminByEmail = `--sql 9a2d4c16-7b3f-4e8a-b1c5-0e6f8d2a4c71
select id, email, password_hash, name, created_at
from admins
where email = $1::text
limit 1;
`
